package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wishbox-backend/internal/domains/item"
	"wishbox-backend/internal/domains/wishlist"
	"wishbox-backend/internal/shared/middleware"
	"wishbox-backend/internal/shared/response"
	"wishbox-backend/pkg/logger"
)

// ItemHandler translates HTTP requests into item.Service calls.
type ItemHandler struct {
	service item.Service
}

func NewItemHandler(service item.Service) *ItemHandler {
	return &ItemHandler{service: service}
}

// Create handles POST /wishlists/:slug/items
func (h *ItemHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req item.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, err := h.service.Add(c.Request.Context(), c.Param("slug"), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, view)
}

// Update handles PATCH /wishlists/:slug/items/:itemId
func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item id")
		return
	}

	var req item.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, err := h.service.Update(c.Request.Context(), c.Param("slug"), itemID, userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// Delete handles DELETE /wishlists/:slug/items/:itemId
func (h *ItemHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item id")
		return
	}

	if err := h.service.Remove(c.Request.Context(), c.Param("slug"), itemID, userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// handleError maps domain errors to HTTP status codes.
func (h *ItemHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wishlist.ErrWishlistNotFound), errors.Is(err, item.ErrItemNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, wishlist.ErrNotOwner):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("[ITEM] Unhandled service error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
