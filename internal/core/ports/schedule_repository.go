package ports

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/schedule"
)

// ScheduleRepository is the persistence contract for schedule records.
// The store carries a unique constraint on the order reference; Add is the
// authoritative duplicate check and returns the conflict error when a
// schedule for the same order already exists, regardless of what any
// caller-side cache believed.
type ScheduleRepository interface {
	// Add persists a new schedule. Returns an already-exists error when
	// the order is scheduled already.
	Add(ctx context.Context, aggregate *schedule.Schedule) error

	// GetByOrderID retrieves the schedule bound to an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*schedule.Schedule, error)
}
