// Package orderrepo persists order aggregates with GORM. It maps the
// aggregate to three tables: the orders row, its line items, and its
// append-only payment history. Statuses, order types, and payment methods
// are stored under their canonical lowercase names.
package orderrepo

import (
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order aggregate. The
// payment status has no column; it is derived from paid_amount and
// total_amount on read.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	OrderType    string     `gorm:"type:varchar(16)"`
	Status       string     `gorm:"type:varchar(16);index"`
	TotalAmount  int64      `gorm:"not null"`
	PaidAmount   int64      `gorm:"not null"`
	DeliveryDate *time.Time
	ScheduleID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time

	Items    []LineItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Payments []PaymentDTO  `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one priced position of an order. Unit prices are frozen
// copies taken at order time, stored in cents.
type LineItemDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Quantity   int       `gorm:"not null"`
	UnitPrice  int64     `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "line_items".
func (LineItemDTO) TableName() string {
	return "line_items"
}

// PaymentDTO is one entry of an order's payment history. Rows are only
// ever inserted.
type PaymentDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Amount     int64     `gorm:"not null"`
	Method     string    `gorm:"type:varchar(16)"`
	Notes      string
	RecordedAt time.Time
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts an order aggregate to its database representation,
// including line item and payment rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	var scheduleID *uuid.UUID
	if id := aggregate.ScheduleID(); id != nil {
		raw := id.Bytes()
		scheduleID = &raw
	}

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Cents(),
		})
	}

	payments := make([]PaymentDTO, 0, len(aggregate.Payments()))
	for _, p := range aggregate.Payments() {
		payments = append(payments, paymentFromDomain(aggregate.ID(), p))
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		OrderType:    aggregate.OrderType().String(),
		Status:       aggregate.Status().String(),
		TotalAmount:  aggregate.TotalAmount().Cents(),
		PaidAmount:   aggregate.PaidAmount().Cents(),
		DeliveryDate: aggregate.DeliveryDate(),
		ScheduleID:   scheduleID,
		CreatedAt:    aggregate.CreatedAt(),
		Items:        items,
		Payments:     payments,
	}
}

func paymentFromDomain(orderID kernel.UUID, p order.Payment) PaymentDTO {
	return PaymentDTO{
		OrderID:    orderID.Bytes(),
		Amount:     p.Amount().Cents(),
		Method:     p.Method().String(),
		Notes:      p.Notes(),
		RecordedAt: p.RecordedAt(),
	}
}

// toDomain converts a database DTO, with its items and payments loaded,
// back to an order aggregate. RestoreOrder re-checks the invariants, so a
// corrupted row fails here instead of producing a broken aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	orderType, err := order.OrderTypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paidAmount, err := kernel.NewMoneyFromCents(dto.PaidAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	payments := make([]order.Payment, 0, len(dto.Payments))
	for _, paymentDTO := range dto.Payments {
		p, paymentErr := paymentToDomain(paymentDTO)
		if paymentErr != nil {
			return nil, paymentErr
		}
		payments = append(payments, p)
	}

	var scheduleID *kernel.UUID
	if dto.ScheduleID != nil {
		sID, scheduleErr := kernel.UUIDFromBytes((*dto.ScheduleID)[:])
		if scheduleErr != nil {
			return nil, scheduleErr
		}
		scheduleID = &sID
	}

	return order.RestoreOrder(id, customerID, items, orderType, status,
		paidAmount, payments, dto.DeliveryDate, scheduleID, dto.CreatedAt)
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	unitPrice, err := kernel.NewMoneyFromCents(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(menuItemID, dto.Quantity, unitPrice)
}

func paymentToDomain(dto PaymentDTO) (order.Payment, error) {
	amount, err := kernel.NewMoneyFromCents(dto.Amount)
	if err != nil {
		return order.Payment{}, err
	}

	method, err := order.PaymentMethodFromString(dto.Method)
	if err != nil {
		return order.Payment{}, err
	}

	return order.NewPayment(amount, method, dto.Notes, dto.RecordedAt)
}
