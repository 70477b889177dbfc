package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/cleanup/internal/server/http/dto"
)

// CatalogHandler exposes the service catalog and price quotes.
type CatalogHandler struct {
	facade CatalogFacade
}

func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Services handles GET /api/services.
func (h *CatalogHandler) Services(c *gin.Context) {
	services := h.facade.Services(c.Request.Context())
	response := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		response = append(response, toServiceResponse(s))
	}
	c.JSON(http.StatusOK, response)
}

// Quote handles GET /api/quote?service=&items=.
func (h *CatalogHandler) Quote(c *gin.Context) {
	items, err := strconv.Atoi(c.Query("items"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "items must be a whole number"})
		return
	}

	quote, err := h.facade.Quote(c.Request.Context(), c.Query("service"), items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.QuoteResponse{
		Service: toServiceResponse(quote.Service),
		Items:   quote.Items,
		Price:   quote.Price,
	})
}
