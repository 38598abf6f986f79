package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wishbox-backend/internal/domains/item"
	"wishbox-backend/internal/domains/reservation"
	"wishbox-backend/internal/domains/wishlist"
	"wishbox-backend/internal/realtime"
	"wishbox-backend/internal/shared/utils"
	"wishbox-backend/pkg/logger"
)

// cancelSecretBytes sizes the capability token returned at reserve time
// (hex-encoded, so twice this many characters).
const cancelSecretBytes = 16

// reservationService implements reservation.Service.
type reservationService struct {
	repo         reservation.Repository
	itemRepo     item.Repository
	wishlistRepo wishlist.Repository
	publisher    realtime.Publisher
}

func NewReservationService(
	repo reservation.Repository,
	itemRepo item.Repository,
	wishlistRepo wishlist.Repository,
	publisher realtime.Publisher,
) reservation.Service {
	return &reservationService{
		repo:         repo,
		itemRepo:     itemRepo,
		wishlistRepo: wishlistRepo,
		publisher:    publisher,
	}
}

func (s *reservationService) Reserve(ctx context.Context, slug string, itemID uuid.UUID, viewerID *uuid.UUID, req reservation.ReserveRequest) (*reservation.ReservationOut, error) {
	it, err := s.visibleItem(ctx, slug, itemID, viewerID)
	if err != nil {
		return nil, err
	}

	// The owner reserving their own item would defeat the surprise and
	// block real guests.
	w, err := s.wishlistRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if viewerID != nil && *viewerID == w.UserID {
		return nil, reservation.ErrOwnItem
	}

	if it.IsGroupGift {
		return nil, reservation.ErrGroupGiftItem
	}

	secret, err := utils.GenerateSecret(cancelSecretBytes)
	if err != nil {
		return nil, err
	}

	res := &reservation.Reservation{
		ID:             uuid.New(),
		ItemID:         it.ID,
		ReserverName:   req.ReserverName,
		ReserverEmail:  req.ReserverEmail,
		ReserverUserID: viewerID,
		CancelSecret:   secret,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Reserve(ctx, res); err != nil {
		return nil, err
	}

	logger.Info("[RESERVATION] Reserved", map[string]interface{}{
		"item_id": it.ID.String(),
		"slug":    slug,
	})

	s.publisher.Publish(slug, realtime.ItemReserved(it.ID.String(), res.ReserverName))

	return &reservation.ReservationOut{
		ID:           res.ID,
		ItemID:       res.ItemID,
		ReserverName: res.ReserverName,
		CancelSecret: res.CancelSecret,
		CreatedAt:    res.CreatedAt,
	}, nil
}

func (s *reservationService) Cancel(ctx context.Context, slug string, itemID uuid.UUID, viewerID *uuid.UUID, req reservation.CancelRequest) error {
	it, err := s.visibleItem(ctx, slug, itemID, viewerID)
	if err != nil {
		return err
	}

	if err := s.repo.Cancel(ctx, it.ID, req.CancelSecret); err != nil {
		return err
	}

	logger.Info("[RESERVATION] Cancelled", map[string]interface{}{
		"item_id": it.ID.String(),
		"slug":    slug,
	})

	s.publisher.Publish(slug, realtime.ItemUnreserved(it.ID.String()))
	return nil
}

// visibleItem resolves slug+itemID for the viewer, applying the same
// visibility rule as the wishlist read path: a private list is a 404 to
// anyone but its owner.
func (s *reservationService) visibleItem(ctx context.Context, slug string, itemID uuid.UUID, viewerID *uuid.UUID) (*item.Item, error) {
	w, err := s.wishlistRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	isOwner := viewerID != nil && *viewerID == w.UserID
	if !w.IsPublic && !isOwner {
		return nil, wishlist.ErrWishlistNotFound
	}

	return s.itemRepo.FindActive(ctx, w.ID, itemID)
}
