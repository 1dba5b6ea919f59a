package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrGetOrdersAwaitingPaymentQueryIsNotConstructed = errors.New(
	"GetOrdersAwaitingPaymentQuery must be created via NewGetOrdersAwaitingPaymentQuery constructor",
)

// GetOrdersAwaitingPaymentQuery retrieves accepted orders that still carry
// an outstanding balance. Pending orders are excluded; money is not chased
// before the kitchen accepts, and terminal orders owe nothing by
// definition.
type GetOrdersAwaitingPaymentQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersAwaitingPaymentQuery creates the parameterless query.
func NewGetOrdersAwaitingPaymentQuery() GetOrdersAwaitingPaymentQuery {
	return GetOrdersAwaitingPaymentQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersAwaitingPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersAwaitingPaymentQueryIsNotConstructed)
}

// GetOrdersAwaitingPaymentQueryResponse is one open balance.
type GetOrdersAwaitingPaymentQueryResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	Status           string
	TotalAmount      kernel.Money
	PaidAmount       kernel.Money
	RemainingBalance kernel.Money
	PaymentStatus    string
}
