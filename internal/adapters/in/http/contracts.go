package http

import (
	"time"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/schedule"
)

// Error is the uniform error body of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. Amounts are
// integer cents.
type CreateOrderRequest struct {
	CustomerID   string            `json:"customer_id"`
	OrderType    string            `json:"order_type"`
	DeliveryDate *time.Time        `json:"delivery_date,omitempty"`
	Items        []LineItemRequest `json:"items"`
}

// LineItemRequest is one position of a new order.
type LineItemRequest struct {
	MenuItemID     string `json:"menu_item_id"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// ChangeStatusRequest is the body of POST /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// RecordPaymentRequest is the body of POST /api/v1/orders/:id/payments.
type RecordPaymentRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
	Notes       string `json:"notes,omitempty"`
}

// AssignScheduleRequest is the body of POST /api/v1/orders/:id/schedule.
type AssignScheduleRequest struct {
	StaffID    string    `json:"staff_id"`
	ShiftLabel string    `json:"shift_label"`
	Date       time.Time `json:"date"`
}

// OrderResponse is the read model of an order on the wire. Statuses carry
// their canonical lowercase names.
type OrderResponse struct {
	ID             string             `json:"id"`
	CustomerID     string             `json:"customer_id"`
	Status         string             `json:"status"`
	OrderType      string             `json:"order_type"`
	TotalCents     int64              `json:"total_cents"`
	PaidCents      int64              `json:"paid_cents"`
	RemainingCents int64              `json:"remaining_cents"`
	PaymentStatus  string             `json:"payment_status"`
	DeliveryDate   *time.Time         `json:"delivery_date,omitempty"`
	ScheduleID     *string            `json:"schedule_id,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	Items          []LineItemResponse `json:"items,omitempty"`
	Payments       []PaymentResponse  `json:"payments,omitempty"`
}

// LineItemResponse is one priced position of an order.
type LineItemResponse struct {
	MenuItemID     string `json:"menu_item_id"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	SubtotalCents  int64  `json:"subtotal_cents"`
}

// PaymentResponse is one entry of an order's payment history.
type PaymentResponse struct {
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method"`
	Notes       string    `json:"notes,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// ScheduleResponse is a schedule record on the wire.
type ScheduleResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	StaffID    string    `json:"staff_id"`
	ShiftLabel string    `json:"shift_label"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}

// OpenBalanceResponse is one entry of GET /api/v1/orders/awaiting-payment.
type OpenBalanceResponse struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customer_id"`
	Status         string `json:"status"`
	TotalCents     int64  `json:"total_cents"`
	PaidCents      int64  `json:"paid_cents"`
	RemainingCents int64  `json:"remaining_cents"`
	PaymentStatus  string `json:"payment_status"`
}

func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:             aggregate.ID().String(),
		CustomerID:     aggregate.CustomerID().String(),
		Status:         aggregate.Status().String(),
		OrderType:      aggregate.OrderType().String(),
		TotalCents:     aggregate.TotalAmount().Cents(),
		PaidCents:      aggregate.PaidAmount().Cents(),
		RemainingCents: aggregate.RemainingBalance().Cents(),
		PaymentStatus:  aggregate.PaymentStatus().String(),
		DeliveryDate:   aggregate.DeliveryDate(),
		CreatedAt:      aggregate.CreatedAt(),
	}

	if id := aggregate.ScheduleID(); id != nil {
		s := id.String()
		resp.ScheduleID = &s
	}

	for _, item := range aggregate.Items() {
		resp.Items = append(resp.Items, LineItemResponse{
			MenuItemID:     item.MenuItemID().String(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPrice().Cents(),
			SubtotalCents:  item.Subtotal().Cents(),
		})
	}

	for _, p := range aggregate.Payments() {
		resp.Payments = append(resp.Payments, PaymentResponse{
			AmountCents: p.Amount().Cents(),
			Method:      p.Method().String(),
			Notes:       p.Notes(),
			RecordedAt:  p.RecordedAt(),
		})
	}

	return resp
}

func orderResponseFromReadModel(model queries.GetOrderQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:             model.ID.String(),
		CustomerID:     model.CustomerID.String(),
		Status:         model.Status,
		OrderType:      model.OrderType,
		TotalCents:     model.TotalAmount.Cents(),
		PaidCents:      model.PaidAmount.Cents(),
		RemainingCents: model.RemainingBalance.Cents(),
		PaymentStatus:  model.PaymentStatus,
		DeliveryDate:   model.DeliveryDate,
		CreatedAt:      model.CreatedAt,
	}

	if model.ScheduleID != nil {
		s := model.ScheduleID.String()
		resp.ScheduleID = &s
	}

	for _, item := range model.Items {
		resp.Items = append(resp.Items, LineItemResponse{
			MenuItemID:     item.MenuItemID.String(),
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPrice.Cents(),
			SubtotalCents:  item.Subtotal.Cents(),
		})
	}

	for _, p := range model.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			AmountCents: p.Amount.Cents(),
			Method:      p.Method,
			Notes:       p.Notes,
			RecordedAt:  p.RecordedAt,
		})
	}

	return resp
}

func scheduleResponseFromAggregate(record *schedule.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:         record.ID().String(),
		OrderID:    record.OrderID().String(),
		StaffID:    record.StaffID().String(),
		ShiftLabel: record.ShiftLabel(),
		Date:       record.Date(),
		Status:     record.Status().String(),
	}
}
