// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, the event
// publisher, and the outbound notification client.
package ports

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates.
//
// Mutations are deliberately per-field: UpdateStatus, AppendPayment, and
// UpdateScheduleAssignment each write only the columns they own. Combined
// with GetForUpdate, a handler always applies its change to the latest
// stored state and never overwrites a concurrent writer's field with a
// stale full-record save.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier, with payment history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order under a row lock. Must run inside an
	// active unit-of-work transaction; the lock holds until commit or
	// rollback, so gate checks read the paid amount as of apply time.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus writes the aggregate's status column only.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// AppendPayment inserts the new payment row and writes the
	// aggregate's paid amount column. The payment must already be
	// recorded on the aggregate.
	AppendPayment(ctx context.Context, aggregate *order.Order, payment order.Payment) error

	// UpdateScheduleAssignment writes the schedule reference column only.
	UpdateScheduleAssignment(ctx context.Context, aggregate *order.Order) error

	// GetAllAwaitingFinalPayment retrieves confirmed or in-progress orders
	// that still carry an outstanding balance.
	GetAllAwaitingFinalPayment(ctx context.Context) ([]*order.Order, error)
}
