package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wishbox-backend/internal/domains/wishlist"
	"wishbox-backend/internal/shared/middleware"
	"wishbox-backend/internal/shared/response"
	"wishbox-backend/pkg/logger"
)

// WishlistHandler translates HTTP requests into wishlist.Service calls.
type WishlistHandler struct {
	service wishlist.Service
}

func NewWishlistHandler(service wishlist.Service) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// Create handles POST /wishlists
func (h *WishlistHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req wishlist.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	w, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, w)
}

// List handles GET /wishlists
func (h *WishlistHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	summaries, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, summaries)
}

// Get handles GET /wishlists/:slug (optional auth: a token changes what
// the caller is allowed to see, but none is required).
func (h *WishlistHandler) Get(c *gin.Context) {
	var viewerID *uuid.UUID
	if id, ok := middleware.UserID(c); ok {
		viewerID = &id
	}

	detail, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"), viewerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// Update handles PATCH /wishlists/:slug
func (h *WishlistHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req wishlist.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	w, err := h.service.Update(c.Request.Context(), c.Param("slug"), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, w)
}

// Delete handles DELETE /wishlists/:slug
func (h *WishlistHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("slug"), userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// handleError maps domain errors to HTTP status codes.
func (h *WishlistHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wishlist.ErrWishlistNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, wishlist.ErrNotOwner):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("[WISHLIST] Unhandled service error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
