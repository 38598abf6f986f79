package main

import (
	"github.com/hibiken/asynq"

	itemJob "wishbox-backend/internal/domains/item/job"
	reservationJob "wishbox-backend/internal/domains/reservation/job"
	"wishbox-backend/internal/shared"
	"wishbox-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	purgeDeletedItems    *itemJob.PurgeDeletedItemsHandler
	pruneOldReservations *reservationJob.PruneOldReservationsHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	retention := c.Config.Retention

	return &HandlerRegistry{
		purgeDeletedItems:    itemJob.NewPurgeDeletedItemsHandler(c.ItemRepo, retention.PurgeDeletedAfterDays),
		pruneOldReservations: reservationJob.NewPruneOldReservationsHandler(c.ReservationRepo, retention.PruneCancelledAfterDays),
	}
}

// RegisterHandlers wires every task type to its handler
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(shared.TypePurgeDeletedItems, h.purgeDeletedItems)
	mux.Handle(shared.TypePruneOldReservations, h.pruneOldReservations)
}
