// Package queries contains the read operations of the order workflow.
// Query handlers bypass the aggregates and read the database directly;
// derived values such as the payment status are computed through the same
// domain functions the write side uses, never re-implemented in SQL.
package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items and payment
// history.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery validates and builds the query.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full read model of one order. Statuses are
// reported with their canonical lowercase names.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	Status           string
	OrderType        string
	TotalAmount      kernel.Money
	PaidAmount       kernel.Money
	RemainingBalance kernel.Money
	PaymentStatus    string
	DeliveryDate     *time.Time
	ScheduleID       *kernel.UUID
	CreatedAt        time.Time
	Items            []GetOrderLineItemResponse
	Payments         []GetOrderPaymentResponse
}

// GetOrderLineItemResponse is one priced position of the order.
type GetOrderLineItemResponse struct {
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  kernel.Money
	Subtotal   kernel.Money
}

// GetOrderPaymentResponse is one entry of the order's payment history.
type GetOrderPaymentResponse struct {
	Amount     kernel.Money
	Method     string
	Notes      string
	RecordedAt time.Time
}
