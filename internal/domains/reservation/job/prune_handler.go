package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"wishbox-backend/internal/domains/reservation"
	"wishbox-backend/pkg/logger"
)

type PruneOldReservationsPayload struct {
	Date time.Time `json:"date,omitempty"`
}

// PruneOldReservationsHandler removes long-cancelled reservation rows.
// A fresh reserve recreates the row on demand, so pruning only keeps the
// table small.
type PruneOldReservationsHandler struct {
	reservationRepo reservation.Repository
	retentionDays   int
}

func NewPruneOldReservationsHandler(reservationRepo reservation.Repository, retentionDays int) *PruneOldReservationsHandler {
	return &PruneOldReservationsHandler{
		reservationRepo: reservationRepo,
		retentionDays:   retentionDays,
	}
}

func (h *PruneOldReservationsHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload PruneOldReservationsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("[Worker] Bad prune payload", err)
		return err
	}

	reference := time.Now().UTC()
	if !payload.Date.IsZero() {
		reference = payload.Date
	}
	cutoff := reference.AddDate(0, 0, -h.retentionDays)

	pruned, err := h.reservationRepo.PruneCancelled(ctx, cutoff)
	if err != nil {
		logger.Error("[Worker] Prune reservations failed", err)
		return err
	}

	log.Info().
		Time("cutoff", cutoff).
		Int("reservations_pruned", pruned).
		Msg("Pruned cancelled reservations")
	return nil
}
