// Package shared holds cross-domain constants: asynq task types and
// queue names used by both the scheduler and the worker.
package shared

// Task types
const (
	TypePurgeDeletedItems    = "maintenance:purge_items"
	TypePruneOldReservations = "maintenance:prune_reservations"
)

// Queue names
const (
	QueueDefault     = "default"
	QueueMaintenance = "maintenance"
)
