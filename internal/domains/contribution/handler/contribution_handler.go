package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wishbox-backend/internal/domains/contribution"
	"wishbox-backend/internal/domains/item"
	"wishbox-backend/internal/domains/wishlist"
	"wishbox-backend/internal/shared/middleware"
	"wishbox-backend/internal/shared/response"
	"wishbox-backend/pkg/logger"
)

// ContributionHandler translates HTTP requests into contribution.Service
// calls. Runs behind OptionalAuth like the reservation routes.
type ContributionHandler struct {
	service contribution.Service
}

func NewContributionHandler(service contribution.Service) *ContributionHandler {
	return &ContributionHandler{service: service}
}

// Contribute handles POST /wishlists/:slug/items/:itemId/contribute
func (h *ContributionHandler) Contribute(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item id")
		return
	}

	var req contribution.ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var viewerID *uuid.UUID
	if id, ok := middleware.UserID(c); ok {
		viewerID = &id
	}

	out, err := h.service.Contribute(c.Request.Context(), c.Param("slug"), itemID, viewerID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, out)
}

// handleError maps domain errors to HTTP status codes.
func (h *ContributionHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, contribution.ErrNotGroupGift), errors.Is(err, contribution.ErrOwnItem):
		response.BadRequest(c, err.Error())
	case errors.Is(err, wishlist.ErrWishlistNotFound), errors.Is(err, item.ErrItemNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("[CONTRIBUTION] Unhandled service error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
