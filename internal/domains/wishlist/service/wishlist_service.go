package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wishbox-backend/internal/domains/item"
	"wishbox-backend/internal/domains/wishlist"
	"wishbox-backend/internal/shared/utils"
	"wishbox-backend/pkg/logger"
)

// slugAttempts bounds the collision retry loop before falling back to a
// random suffix.
const slugAttempts = 50

// wishlistService implements wishlist.Service.
type wishlistService struct {
	repo     wishlist.Repository
	itemRepo item.Repository
}

func NewWishlistService(repo wishlist.Repository, itemRepo item.Repository) wishlist.Service {
	return &wishlistService{
		repo:     repo,
		itemRepo: itemRepo,
	}
}

func (s *wishlistService) Create(ctx context.Context, ownerID uuid.UUID, req wishlist.CreateRequest) (*wishlist.Wishlist, error) {
	base := utils.GenerateSlug(req.Title)
	now := time.Now().UTC()

	w := &wishlist.Wishlist{
		ID:          uuid.New(),
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		CoverEmoji:  req.Cover(),
		IsPublic:    req.Public(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The unique index on slug arbitrates races between identical
	// titles; on collision we retry with the next numbered candidate.
	for attempt := 1; attempt <= slugAttempts; attempt++ {
		w.Slug = base
		if attempt > 1 {
			w.Slug = fmt.Sprintf("%s-%d", base, attempt)
		}

		err := s.repo.Create(ctx, w)
		if err == nil {
			logger.Info("[WISHLIST] Created", map[string]interface{}{
				"wishlist_id": w.ID.String(),
				"slug":        w.Slug,
			})
			return w, nil
		}
		if !errors.Is(err, wishlist.ErrSlugTaken) {
			return nil, err
		}
	}

	// Popular title. A random suffix is effectively collision-free; if
	// the system's randomness source is broken a uuid still works.
	suffix, err := utils.GenerateSecret(4)
	if err != nil {
		suffix = uuid.NewString()[:8]
	}
	w.Slug = fmt.Sprintf("%s-%s", base, suffix)
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *wishlistService) List(ctx context.Context, ownerID uuid.UUID) ([]wishlist.Summary, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *wishlistService) GetBySlug(ctx context.Context, slug string, viewerID *uuid.UUID) (*wishlist.Detail, error) {
	w, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	isOwner := viewerID != nil && *viewerID == w.UserID

	// A private list looks exactly like a missing one to everybody but
	// its owner, so probing slugs reveals nothing.
	if !w.IsPublic && !isOwner {
		return nil, wishlist.ErrWishlistNotFound
	}

	ownerName, err := s.repo.OwnerName(ctx, w.UserID)
	if err != nil {
		return nil, err
	}

	records, err := s.itemRepo.ListRecords(ctx, w.ID)
	if err != nil {
		return nil, err
	}

	views := make([]item.View, 0, len(records))
	for i := range records {
		views = append(views, item.BuildView(&records[i], isOwner))
	}

	return &wishlist.Detail{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		CoverEmoji:  w.CoverEmoji,
		Slug:        w.Slug,
		IsPublic:    w.IsPublic,
		OwnerName:   ownerName,
		IsOwner:     isOwner,
		Items:       views,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}, nil
}

func (s *wishlistService) Update(ctx context.Context, slug string, callerID uuid.UUID, req wishlist.UpdateRequest) (*wishlist.Wishlist, error) {
	w, err := s.ownedBySlug(ctx, slug, callerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		w.Title = *req.Title
	}
	if req.Description != nil {
		w.Description = req.Description
	}
	if req.CoverEmoji != nil {
		w.CoverEmoji = *req.CoverEmoji
	}
	if req.IsPublic != nil {
		w.IsPublic = *req.IsPublic
	}
	w.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *wishlistService) Delete(ctx context.Context, slug string, callerID uuid.UUID) error {
	w, err := s.ownedBySlug(ctx, slug, callerID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, w.ID); err != nil {
		return err
	}

	logger.Info("[WISHLIST] Deleted", map[string]interface{}{
		"wishlist_id": w.ID.String(),
		"slug":        slug,
	})
	return nil
}

// ownedBySlug loads a wishlist and checks the caller owns it.
func (s *wishlistService) ownedBySlug(ctx context.Context, slug string, callerID uuid.UUID) (*wishlist.Wishlist, error) {
	w, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if w.UserID != callerID {
		return nil, wishlist.ErrNotOwner
	}
	return w, nil
}
