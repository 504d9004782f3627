package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-reactor/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-reactor/internal/domain"
)

// Input type values accepted on the wire.
const (
	InputTypeViewAppeared     = "view_appeared"
	InputTypeRefreshRequested = "refresh_requested"
)

// InputRequest is the HTTP request body for submitting an input event.
type InputRequest struct {
	Type string `json:"type" validate:"required,oneof=view_appeared refresh_requested"`
}

// InputAccepted is the HTTP response for an accepted input event.
type InputAccepted struct {
	Status string `json:"status"`
	Type   string `json:"type"`
}

// InputHandler accepts input events and forwards them to the reactor engine.
type InputHandler struct {
	inputs chan<- domain.Input
}

// NewInputHandler creates a new input handler feeding the given channel.
func NewInputHandler(inputs chan<- domain.Input) *InputHandler {
	if inputs == nil {
		panic("handlers: inputs channel is required")
	}

	return &InputHandler{inputs: inputs}
}

// SubmitInput handles POST /api/v1/inputs
// Accepts an input event and enqueues it for the reactor engine.
// Each accepted input triggers exactly one fetch attempt.
//
// @Summary Submit an input event
// @Description Enqueues an input event for the reactor engine
// @Tags inputs
// @Accept json
// @Produce json
// @Success 202 {object} InputAccepted
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/inputs [post]
func (h *InputHandler) SubmitInput(c *gin.Context) {
	var req InputRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		if fieldErrors := dto.ValidationErrors(err); len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
				dto.ErrorCodeValidation,
				"request validation failed",
				fieldErrors,
			).WithTraceID(dto.GetTraceID(c)))

			return
		}

		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"invalid request body",
		).WithTraceID(dto.GetTraceID(c)))

		return
	}

	var input domain.Input
	switch req.Type {
	case InputTypeViewAppeared:
		input = domain.ViewAppeared{}
	case InputTypeRefreshRequested:
		input = domain.RefreshRequested{}
	default:
		dto.HandleError(c, domain.NewValidationError("type", "unknown input type"))
		return
	}

	select {
	case h.inputs <- input:
		c.JSON(http.StatusAccepted, InputAccepted{
			Status: "accepted",
			Type:   req.Type,
		})
	case <-c.Request.Context().Done():
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.ErrorCodeUnavailable,
			"input intake is not accepting events",
		).WithTraceID(dto.GetTraceID(c)))
	}
}

// RegisterInputRoutes registers input routes on the given router group.
func (h *InputHandler) RegisterInputRoutes(rg *gin.RouterGroup) {
	rg.POST("/inputs", h.SubmitInput)
}
