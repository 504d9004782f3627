package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-reactor/internal/domain"
	"github.com/jsamuelsen/quote-reactor/internal/reactor"
)

// Output event names used on the SSE stream.
const (
	EventRefreshEnabled = "refresh_enabled"
	EventFetchSucceeded = "fetch_succeeded"
	EventFetchFailed    = "fetch_failed"
)

// EventMessage is the SSE payload for a single output event.
type EventMessage struct {
	Type    string         `json:"type"`
	Enabled *bool          `json:"enabled,omitempty"`
	Quote   *QuoteResponse `json:"quote,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// EventHandler streams reactor output events over Server-Sent Events.
type EventHandler struct {
	broadcaster *reactor.Broadcaster
}

// NewEventHandler creates a new event stream handler.
func NewEventHandler(broadcaster *reactor.Broadcaster) *EventHandler {
	if broadcaster == nil {
		panic("handlers: broadcaster is required")
	}

	return &EventHandler{broadcaster: broadcaster}
}

// StreamEvents handles GET /api/v1/events
// Subscribes the caller to the reactor output stream and forwards each
// event as an SSE message until the client disconnects or the stream is
// torn down.
//
// @Summary Stream output events
// @Description Streams reactor output events over Server-Sent Events
// @Tags events
// @Produce text/event-stream
// @Router /api/v1/events [get]
func (h *EventHandler) StreamEvents(c *gin.Context) {
	sub, cancel := h.broadcaster.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, ok := <-sub:
			if !ok {
				return false
			}

			name, msg := toEventMessage(ev)
			c.SSEvent(name, msg)

			return true

		case <-c.Request.Context().Done():
			return false
		}
	})
}

// toEventMessage converts a domain Output to its SSE name and payload.
func toEventMessage(ev domain.Output) (string, EventMessage) {
	switch out := ev.(type) {
	case domain.RefreshEnabled:
		enabled := out.Enabled
		return EventRefreshEnabled, EventMessage{
			Type:    EventRefreshEnabled,
			Enabled: &enabled,
		}

	case domain.FetchSucceeded:
		return EventFetchSucceeded, EventMessage{
			Type:  EventFetchSucceeded,
			Quote: toQuoteResponse(&out.Quote),
		}

	case domain.FetchFailed:
		return EventFetchFailed, EventMessage{
			Type:  EventFetchFailed,
			Error: out.Err.Error(),
		}

	default:
		return "unknown", EventMessage{Type: "unknown"}
	}
}

// RegisterEventRoutes registers event stream routes on the given router group.
func (h *EventHandler) RegisterEventRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.StreamEvents)
}
