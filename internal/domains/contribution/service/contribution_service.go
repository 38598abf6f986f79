package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wishbox-backend/internal/domains/contribution"
	"wishbox-backend/internal/domains/item"
	"wishbox-backend/internal/domains/wishlist"
	"wishbox-backend/internal/realtime"
	"wishbox-backend/pkg/logger"
)

// contributionService implements contribution.Service.
type contributionService struct {
	repo         contribution.Repository
	itemRepo     item.Repository
	wishlistRepo wishlist.Repository
	publisher    realtime.Publisher
}

func NewContributionService(
	repo contribution.Repository,
	itemRepo item.Repository,
	wishlistRepo wishlist.Repository,
	publisher realtime.Publisher,
) contribution.Service {
	return &contributionService{
		repo:         repo,
		itemRepo:     itemRepo,
		wishlistRepo: wishlistRepo,
		publisher:    publisher,
	}
}

func (s *contributionService) Contribute(ctx context.Context, slug string, itemID uuid.UUID, viewerID *uuid.UUID, req contribution.ContributeRequest) (*contribution.ContributionOut, error) {
	w, err := s.wishlistRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	isOwner := viewerID != nil && *viewerID == w.UserID
	if !w.IsPublic && !isOwner {
		return nil, wishlist.ErrWishlistNotFound
	}
	if isOwner {
		return nil, contribution.ErrOwnItem
	}

	it, err := s.itemRepo.FindActive(ctx, w.ID, itemID)
	if err != nil {
		return nil, err
	}
	if !it.IsGroupGift {
		return nil, contribution.ErrNotGroupGift
	}

	entry := &contribution.Contribution{
		ID:                uuid.New(),
		ItemID:            it.ID,
		ContributorName:   req.ContributorName,
		ContributorEmail:  req.ContributorEmail,
		ContributorUserID: viewerID,
		Amount:            req.Amount,
		CreatedAt:         time.Now().UTC(),
	}

	agg, err := s.repo.Add(ctx, entry)
	if err != nil {
		return nil, err
	}

	logger.Info("[CONTRIBUTION] Recorded", map[string]interface{}{
		"item_id": it.ID.String(),
		"slug":    slug,
	})

	s.publisher.Publish(slug, realtime.ContributionAdded(
		it.ID.String(), agg.TotalContributed, agg.ContributorsCount, entry.ContributorName))

	goalReached := it.TargetAmount != nil && agg.TotalContributed.GreaterThanOrEqual(*it.TargetAmount)

	return &contribution.ContributionOut{
		ID:                entry.ID,
		ItemID:            entry.ItemID,
		ContributorName:   entry.ContributorName,
		Amount:            entry.Amount,
		CreatedAt:         entry.CreatedAt,
		TotalContributed:  agg.TotalContributed,
		ContributorsCount: agg.ContributorsCount,
		GoalReached:       goalReached,
	}, nil
}
