package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wishbox-backend/internal/domains/item"
	"wishbox-backend/internal/domains/reservation"
	"wishbox-backend/internal/domains/wishlist"
	"wishbox-backend/internal/shared/middleware"
	"wishbox-backend/internal/shared/response"
	"wishbox-backend/pkg/logger"
)

// ReservationHandler translates HTTP requests into reservation.Service
// calls. Both routes run behind OptionalAuth: guests act anonymously, a
// logged-in owner is blocked from claiming their own items.
type ReservationHandler struct {
	service reservation.Service
}

func NewReservationHandler(service reservation.Service) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// Reserve handles POST /wishlists/:slug/items/:itemId/reserve
func (h *ReservationHandler) Reserve(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item id")
		return
	}

	var req reservation.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	out, err := h.service.Reserve(c.Request.Context(), c.Param("slug"), itemID, optionalViewer(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, out)
}

// Cancel handles DELETE /wishlists/:slug/items/:itemId/reserve
func (h *ReservationHandler) Cancel(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item id")
		return
	}

	var req reservation.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Cancel(c.Request.Context(), c.Param("slug"), itemID, optionalViewer(c), req); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func optionalViewer(c *gin.Context) *uuid.UUID {
	if id, ok := middleware.UserID(c); ok {
		return &id
	}
	return nil
}

// handleError maps domain errors to HTTP status codes.
func (h *ReservationHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reservation.ErrAlreadyReserved):
		response.Conflict(c, err.Error())
	case errors.Is(err, reservation.ErrWrongCancelSecret):
		response.Forbidden(c, err.Error())
	case errors.Is(err, reservation.ErrOwnItem), errors.Is(err, reservation.ErrGroupGiftItem):
		response.BadRequest(c, err.Error())
	case errors.Is(err, reservation.ErrNoActiveReservation),
		errors.Is(err, wishlist.ErrWishlistNotFound),
		errors.Is(err, item.ErrItemNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("[RESERVATION] Unhandled service error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
