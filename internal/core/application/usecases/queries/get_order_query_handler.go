package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its line items and payment
// history straight from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order read model or an object-not-found error.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.readOrderRow(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Items, err = h.readLineItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Payments, err = h.readPayments(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readOrderRow(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			order_type,
			total_amount,
			paid_amount,
			delivery_date,
			schedule_id,
			created_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var (
		id, customerID        uuid.UUID
		status, orderType     string
		totalCents, paidCents int64
		deliveryDate          sql.NullTime
		scheduleID            uuid.NullUUID
		createdAt             time.Time
	)

	err := row.Scan(&id, &customerID, &status, &orderType,
		&totalCents, &paidCents, &deliveryDate, &scheduleID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", orderID)
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		Status:    status,
		OrderType: orderType,
		CreatedAt: createdAt,
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.TotalAmount, err = kernel.NewMoneyFromCents(totalCents); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.PaidAmount, err = kernel.NewMoneyFromCents(paidCents); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.RemainingBalance = resp.TotalAmount.Sub(resp.PaidAmount)
	resp.PaymentStatus = order.DerivePaymentStatus(resp.PaidAmount, resp.TotalAmount).String()

	if deliveryDate.Valid {
		d := deliveryDate.Time
		resp.DeliveryDate = &d
	}
	if scheduleID.Valid {
		sID, sErr := kernel.UUIDFromBytes(scheduleID.UUID[:])
		if sErr != nil {
			return GetOrderQueryResponse{}, sErr
		}
		resp.ScheduleID = &sID
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readLineItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderLineItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			quantity,
			unit_price
		FROM line_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderLineItemResponse, 0)
	for rows.Next() {
		var (
			menuItemID uuid.UUID
			quantity   int
			priceCents int64
		)
		if err = rows.Scan(&menuItemID, &quantity, &priceCents); err != nil {
			return nil, err
		}

		var item GetOrderLineItemResponse
		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = kernel.NewMoneyFromCents(priceCents); err != nil {
			return nil, err
		}
		item.Quantity = quantity
		item.Subtotal = item.UnitPrice.MulInt(int64(quantity))
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) readPayments(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderPaymentResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			amount,
			method,
			notes,
			recorded_at
		FROM payments
		WHERE order_id = ?
		ORDER BY recorded_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]GetOrderPaymentResponse, 0)
	for rows.Next() {
		var (
			amountCents int64
			payment     GetOrderPaymentResponse
		)
		if err = rows.Scan(&amountCents, &payment.Method, &payment.Notes, &payment.RecordedAt); err != nil {
			return nil, err
		}
		if payment.Amount, err = kernel.NewMoneyFromCents(amountCents); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}
