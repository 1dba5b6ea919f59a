package order

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the fulfillment and payment workflow.
// It owns the lifecycle status, the append-only payment history, and the
// write-once schedule assignment, and it is the only place their invariants
// are enforced:
//
//   - 0 <= paidAmount <= totalAmount, paidAmount never decreases
//   - paymentStatus is a pure function of paidAmount and totalAmount
//   - status moves one step along pending → confirmed → preparing → ready →
//     delivered, or to cancelled from any non-terminal state
//   - confirmed requires the upfront threshold of the order type
//     (100% urgent, 40% scheduled); delivered requires full payment
//   - a schedule reference, once set, is immutable
//
// All fields are private; mutation goes through RecordPayment,
// TransitionTo, and AssignSchedule.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	items        []LineItem
	totalAmount  kernel.Money
	orderType    OrderType
	status       Status
	paidAmount   kernel.Money
	payments     []Payment
	deliveryDate *time.Time
	scheduleID   *kernel.UUID
	createdAt    time.Time

	isConstructed bool
}

// NewOrder creates a pending, unpaid order from the checkout flow.
// The total is fixed at creation as the sum of the line item subtotals.
// Scheduled orders require a delivery date.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	orderType OrderType,
	deliveryDate *time.Time,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		orderType.Validate(),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("lineItems")
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(item.Subtotal())
	}

	if orderType == Scheduled && deliveryDate == nil {
		return nil, errs.NewValueIsRequiredError("deliveryDate")
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		items:         append([]LineItem(nil), items...),
		totalAmount:   total,
		orderType:     orderType,
		status:        Pending,
		paidAmount:    kernel.ZeroMoney(),
		deliveryDate:  deliveryDate,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. It re-checks the
// stored state against the aggregate invariants so corrupted rows surface
// as errors instead of invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	orderType OrderType,
	status Status,
	paidAmount kernel.Money,
	payments []Payment,
	deliveryDate *time.Time,
	scheduleID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, items, orderType, deliveryDate, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if !o.totalAmount.GreaterOrEqual(paidAmount) {
		return nil, errs.NewValueIsOutOfRangeError("paidAmount",
			paidAmount.String(), "0.00", o.totalAmount.String())
	}

	for _, p := range payments {
		if err = p.Validate(); err != nil {
			return nil, err
		}
	}

	if scheduleID != nil {
		if err = scheduleID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.paidAmount = paidAmount
	o.payments = append([]Payment(nil), payments...)
	o.scheduleID = scheduleID
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// TotalAmount returns the fixed order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// OrderType returns the fulfillment type.
func (o *Order) OrderType() OrderType {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaidAmount returns the amount collected so far.
func (o *Order) PaidAmount() kernel.Money {
	return o.paidAmount
}

// Payments returns a copy of the append-only payment history.
func (o *Order) Payments() []Payment {
	return append([]Payment(nil), o.payments...)
}

// DeliveryDate returns the delivery date, nil for urgent orders.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// ScheduleID returns the assigned schedule reference, nil if unassigned.
func (o *Order) ScheduleID() *kernel.UUID {
	return o.scheduleID
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaymentStatus derives the payment classification from the paid amount.
// This is the only place in the system the classification is computed.
func (o *Order) PaymentStatus() PaymentStatus {
	return DerivePaymentStatus(o.paidAmount, o.totalAmount)
}

// RemainingBalance returns totalAmount minus paidAmount.
func (o *Order) RemainingBalance() kernel.Money {
	return o.totalAmount.Sub(o.paidAmount)
}

// MinimumUpfrontMet reports whether the paid amount reaches the upfront
// threshold of the order type.
func (o *Order) MinimumUpfrontMet() bool {
	return o.paidAmount.MeetsPercentOf(o.totalAmount, o.orderType.UpfrontPercent())
}

// RecordPayment appends a payment to the history and raises the paid
// amount. The payment must fit the remaining balance exactly or partially;
// overpayment is rejected with no state change. Payments against a
// cancelled order are rejected.
func (o *Order) RecordPayment(payment Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	if o.status == Cancelled {
		return errs.NewInvalidStateErrorWithCause(o.status.String(), o.status.String(),
			fmt.Errorf("cannot record a payment against a cancelled order"))
	}

	remaining := o.RemainingBalance()
	if !remaining.GreaterOrEqual(payment.Amount()) {
		return errs.NewValueIsOutOfRangeError("amount",
			payment.Amount().String(), "0.01", remaining.String())
	}

	o.payments = append(o.payments, payment)
	o.paidAmount = o.paidAmount.Add(payment.Amount())
	return nil
}

// TransitionTo moves the order to the target status. Beyond the shape of
// the move (one step forward or a cancellation), the payment gates are
// enforced here against the current paid amount: confirmation requires the
// upfront threshold, delivery requires full payment.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if newStatus == Confirmed && !o.MinimumUpfrontMet() {
		return errs.NewInvalidStateErrorWithCause(o.status.String(), target.String(),
			fmt.Errorf("minimum upfront is %d%% of %s, only %s paid",
				o.orderType.UpfrontPercent(), o.totalAmount, o.paidAmount))
	}

	if newStatus == Delivered && o.PaymentStatus() != Paid {
		return errs.NewInvalidStateErrorWithCause(o.status.String(), target.String(),
			fmt.Errorf("payment status is %s, full payment of %s required",
				o.PaymentStatus(), o.totalAmount))
	}

	o.status = newStatus
	return nil
}

// AssignSchedule binds the order to a schedule record exactly once.
// A second assignment attempt is rejected and leaves the existing
// reference untouched.
func (o *Order) AssignSchedule(scheduleID kernel.UUID) error {
	if err := scheduleID.Validate(); err != nil {
		return err
	}

	if o.scheduleID != nil {
		return errs.NewObjectAlreadyExistsErrorWithCause("scheduleAssignment", o.id.String(),
			fmt.Errorf("order is already scheduled"))
	}

	o.scheduleID = &scheduleID
	return nil
}

// IsScheduled reports whether the order has a schedule assignment.
func (o *Order) IsScheduled() bool {
	return o.scheduleID != nil
}
