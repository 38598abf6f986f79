package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"wishbox-backend/internal/domains/item"
	"wishbox-backend/pkg/logger"
)

// PurgeDeletedItemsPayload optionally pins the reference date, mainly
// for replaying the job by hand.
type PurgeDeletedItemsPayload struct {
	Date time.Time `json:"date,omitempty"`
}

// PurgeDeletedItemsHandler hard-deletes items that were soft-deleted
// longer ago than the retention window. Items with contributions are
// skipped by the repository.
type PurgeDeletedItemsHandler struct {
	itemRepo      item.Repository
	retentionDays int
}

func NewPurgeDeletedItemsHandler(itemRepo item.Repository, retentionDays int) *PurgeDeletedItemsHandler {
	return &PurgeDeletedItemsHandler{
		itemRepo:      itemRepo,
		retentionDays: retentionDays,
	}
}

func (h *PurgeDeletedItemsHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload PurgeDeletedItemsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("[Worker] Bad purge payload", err)
		return err
	}

	reference := time.Now().UTC()
	if !payload.Date.IsZero() {
		reference = payload.Date
	}
	cutoff := reference.AddDate(0, 0, -h.retentionDays)

	purged, err := h.itemRepo.PurgeDeleted(ctx, cutoff)
	if err != nil {
		logger.Error("[Worker] Purge deleted items failed", err)
		return err
	}

	log.Info().
		Time("cutoff", cutoff).
		Int("items_purged", purged).
		Msg("Purged soft-deleted items")
	return nil
}
