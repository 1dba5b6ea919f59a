package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request or command,
// isolating concurrent operations from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a business operation. The
// handler begins the transaction, performs row-locked reads and per-field
// writes through the repositories, then commits; rollback is deferred and
// harmless after a successful commit.
type UnitOfWork interface {
	// Begin starts a database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// ScheduleRepository returns a schedule repository bound to the
	// current transaction.
	ScheduleRepository() ScheduleRepository
}
