// Package commands contains the write operations of the order workflow.
// Every command follows the same shape: a guarded command struct validated
// at construction, and a handler that begins a unit of work, loads the
// order under a row lock, applies one aggregate mutation, persists the
// touched field, commits, and only then publishes events.
package commands

import (
	"context"

	"catering/internal/core/ports"
)

// Unit of Work interfaces scoped to what each handler actually needs.
type (
	// TxManager handles the transaction lifecycle of a business operation.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to the
	// current transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ScheduleRepoFactory provides the schedule repository bound to the
	// current transaction.
	ScheduleRepoFactory interface {
		ScheduleRepository() ports.ScheduleRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions that span order and schedule aggregates.
	UoW interface {
		TxManager
		OrderRepoFactory
		ScheduleRepoFactory
	}

	// UoWFactory creates cross-aggregate unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
