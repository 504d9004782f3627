package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-reactor/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-reactor/internal/app"
	"github.com/jsamuelsen/quote-reactor/internal/domain"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// QuoteResponse is the HTTP response structure for a quote.
type QuoteResponse struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// toQuoteResponse converts a domain Quote to an HTTP response.
func toQuoteResponse(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		Content: q.Content,
		Author:  q.Author,
	}
}

// GetRandomQuote handles GET /api/v1/quotes/random
// Returns a random quote from the external quote service. This is the
// direct request/response path; the reactive path goes through the
// inputs endpoint and the event stream.
//
// @Summary Get a random quote
// @Description Fetches a random quote from the quote service
// @Tags quotes
// @Produce json
// @Success 200 {object} QuoteResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/quotes/random [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	quote, err := h.service.GetRandomQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("/random", h.GetRandomQuote)
}
