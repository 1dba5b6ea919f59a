package queries

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersAwaitingPaymentQueryHandler lists confirmed, preparing and
// ready orders whose paid amount has not reached the total.
type GetOrdersAwaitingPaymentQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersAwaitingPaymentQueryHandler creates a handler for open
// balance queries.
func NewGetOrdersAwaitingPaymentQueryHandler(db *gorm.DB) GetOrdersAwaitingPaymentQueryHandler {
	return GetOrdersAwaitingPaymentQueryHandler{db: db}
}

// Handle returns the open balances sorted by order ID.
func (h GetOrdersAwaitingPaymentQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersAwaitingPaymentQuery,
) ([]GetOrdersAwaitingPaymentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			total_amount,
			paid_amount
		FROM orders
		WHERE status IN (?, ?, ?)
		  AND paid_amount < total_amount
		ORDER BY id
	`, order.Confirmed.String(), order.Preparing.String(), order.Ready.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make([]GetOrdersAwaitingPaymentQueryResponse, 0)
	for rows.Next() {
		var (
			id, customerID        uuid.UUID
			status                string
			totalCents, paidCents int64
		)
		if err = rows.Scan(&id, &customerID, &status, &totalCents, &paidCents); err != nil {
			return nil, err
		}

		var resp GetOrdersAwaitingPaymentQueryResponse
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if resp.TotalAmount, err = kernel.NewMoneyFromCents(totalCents); err != nil {
			return nil, err
		}
		if resp.PaidAmount, err = kernel.NewMoneyFromCents(paidCents); err != nil {
			return nil, err
		}
		resp.Status = status
		resp.RemainingBalance = resp.TotalAmount.Sub(resp.PaidAmount)
		resp.PaymentStatus = order.DerivePaymentStatus(resp.PaidAmount, resp.TotalAmount).String()
		balances = append(balances, resp)
	}

	return balances, rows.Err()
}
