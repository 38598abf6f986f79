package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wishbox-backend/internal/domains/scrape"
	"wishbox-backend/internal/shared/response"
)

// ScrapeHandler exposes the metadata extraction endpoint.
type ScrapeHandler struct {
	service scrape.Service
}

func NewScrapeHandler(service scrape.Service) *ScrapeHandler {
	return &ScrapeHandler{service: service}
}

// Scrape handles POST /scrape. Always 200: extraction failures surface
// as an empty object rather than an error, so the add-item flow is never
// blocked by a hostile or broken page.
func (h *ScrapeHandler) Scrape(c *gin.Context) {
	var req scrape.ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result := h.service.Scrape(c.Request.Context(), req.URL)
	response.Success(c, http.StatusOK, result)
}
