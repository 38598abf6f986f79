package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	itemJob "wishbox-backend/internal/domains/item/job"
	reservationJob "wishbox-backend/internal/domains/reservation/job"
	"wishbox-backend/internal/shared"
	"wishbox-backend/pkg/logger"
)

// Scheduler registers the recurring maintenance tasks with asynq.
type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

func (s *Scheduler) RegisterMaintenanceJobs() error {
	if err := s.registerPurgeDeletedItemsJob(); err != nil {
		return err
	}
	return s.registerPruneOldReservationsJob()
}

// ================================================
// JOB 1: Purge soft-deleted items (daily at 3 AM)
// ================================================
func (s *Scheduler) registerPurgeDeletedItemsJob() error {
	payload, err := json.Marshal(itemJob.PurgeDeletedItemsPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypePurgeDeletedItems, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *",
		task,
		asynq.Queue(shared.QueueMaintenance),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register PurgeDeletedItems job", err)
		return err
	}
	return nil
}

// ================================================
// JOB 2: Prune cancelled reservations (daily at 4 AM)
// ================================================
func (s *Scheduler) registerPruneOldReservationsJob() error {
	payload, err := json.Marshal(reservationJob.PruneOldReservationsPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypePruneOldReservations, payload)

	_, err = s.scheduler.Register(
		"0 4 * * *",
		task,
		asynq.Queue(shared.QueueMaintenance),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register PruneOldReservations job", err)
		return err
	}
	return nil
}

// Start runs the scheduler loop (blocking).
func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

// Shutdown stops the scheduler.
func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
