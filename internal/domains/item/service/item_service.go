package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wishbox-backend/internal/domains/item"
	"wishbox-backend/internal/domains/wishlist"
	"wishbox-backend/internal/realtime"
	"wishbox-backend/pkg/logger"
)

// itemService implements item.Service. Every mutation resolves the
// wishlist by slug, checks ownership, and publishes a realtime event
// after the write commits.
type itemService struct {
	repo         item.Repository
	wishlistRepo wishlist.Repository
	publisher    realtime.Publisher
}

func NewItemService(repo item.Repository, wishlistRepo wishlist.Repository, publisher realtime.Publisher) item.Service {
	return &itemService{
		repo:         repo,
		wishlistRepo: wishlistRepo,
		publisher:    publisher,
	}
}

func (s *itemService) Add(ctx context.Context, slug string, callerID uuid.UUID, req item.CreateRequest) (*item.View, error) {
	w, err := s.ownedWishlist(ctx, slug, callerID)
	if err != nil {
		return nil, err
	}

	it := &item.Item{
		ID:           uuid.New(),
		WishlistID:   w.ID,
		Name:         req.Name,
		URL:          req.URL,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		Description:  req.Description,
		Priority:     req.PriorityOrDefault(),
		IsGroupGift:  req.IsGroupGift,
		TargetAmount: req.TargetAmount,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	logger.Info("[ITEM] Added", map[string]interface{}{
		"item_id": it.ID.String(),
		"slug":    slug,
	})

	view := s.freshView(it)
	// Broadcast payloads use the aggregate-only projection so the
	// owner's own connection never receives reserver or contributor
	// identities.
	s.publisher.Publish(slug, realtime.ItemAdded(view))
	return &view, nil
}

func (s *itemService) Update(ctx context.Context, slug string, itemID, callerID uuid.UUID, req item.UpdateRequest) (*item.View, error) {
	w, err := s.ownedWishlist(ctx, slug, callerID)
	if err != nil {
		return nil, err
	}

	it, err := s.repo.FindActive(ctx, w.ID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.URL != nil {
		it.URL = req.URL
	}
	if req.Price != nil {
		it.Price = req.Price
	}
	if req.ImageURL != nil {
		it.ImageURL = req.ImageURL
	}
	if req.Description != nil {
		it.Description = req.Description
	}
	if req.Priority != nil {
		it.Priority = *req.Priority
	}
	if req.IsGroupGift != nil {
		it.IsGroupGift = *req.IsGroupGift
	}
	if req.TargetAmount != nil {
		it.TargetAmount = req.TargetAmount
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}

	rec, err := s.repo.GetRecord(ctx, w.ID, itemID)
	if err != nil {
		return nil, err
	}

	ownerView := item.BuildView(rec, true)
	s.publisher.Publish(slug, realtime.ItemUpdated(ownerView))
	return &ownerView, nil
}

func (s *itemService) Remove(ctx context.Context, slug string, itemID, callerID uuid.UUID) error {
	w, err := s.ownedWishlist(ctx, slug, callerID)
	if err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, w.ID, itemID); err != nil {
		return err
	}

	logger.Info("[ITEM] Removed", map[string]interface{}{
		"item_id": itemID.String(),
		"slug":    slug,
	})

	s.publisher.Publish(slug, realtime.ItemDeleted(itemID.String()))
	return nil
}

func (s *itemService) ownedWishlist(ctx context.Context, slug string, callerID uuid.UUID) (*wishlist.Wishlist, error) {
	w, err := s.wishlistRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if w.UserID != callerID {
		return nil, wishlist.ErrNotOwner
	}
	return w, nil
}

// freshView projects a just-created item: no reservations or
// contributions can exist yet, so no read-back is needed.
func (s *itemService) freshView(it *item.Item) item.View {
	rec := &item.Record{Item: *it}
	return item.BuildView(rec, true)
}
