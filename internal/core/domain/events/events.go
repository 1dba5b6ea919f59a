// Package events defines the domain events emitted after committed order
// mutations. They feed the best-effort notification path and are never part
// of the mutation's result: a consumer failure cannot unwind the change
// that produced the event.
package events

import (
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

// StatusChanged is emitted after an order's lifecycle status advances or
// the order is cancelled.
type StatusChanged struct {
	OrderID        kernel.UUID
	CustomerID     kernel.UUID
	PreviousStatus order.Status
	NewStatus      order.Status
}

// PaymentRecorded is emitted after a payment is appended to an order's
// history.
type PaymentRecorded struct {
	OrderID       kernel.UUID
	CustomerID    kernel.UUID
	Amount        kernel.Money
	NewPaidAmount kernel.Money
	PaymentStatus order.PaymentStatus
}
