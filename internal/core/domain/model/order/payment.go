package order

import (
	"fmt"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// PaymentStatus is derived from the paid amount and the order total. It is
// never stored or set directly: every reachable order state maps to exactly
// one PaymentStatus.
type PaymentStatus int

const (
	// PaymentStatusUnknown catches uninitialized values.
	PaymentStatusUnknown PaymentStatus = iota

	// Unpaid means no money has been collected.
	Unpaid

	// PartiallyPaid means some, but not all, of the total is collected.
	PartiallyPaid

	// Paid means the collected amount covers the full total.
	Paid
)

// String returns the canonical lowercase name of the payment status.
func (p PaymentStatus) String() string {
	switch p {
	case Unpaid:
		return "unpaid"
	case PartiallyPaid:
		return "partially_paid"
	case Paid:
		return "paid"
	default:
		return "unknown"
	}
}

// DerivePaymentStatus is the single place the unpaid/partially_paid/paid
// classification is computed. Both the aggregate and the read side go
// through it.
func DerivePaymentStatus(paid, total kernel.Money) PaymentStatus {
	switch {
	case paid.IsZero():
		return Unpaid
	case paid.GreaterOrEqual(total):
		return Paid
	default:
		return PartiallyPaid
	}
}

// PaymentMethod identifies how a payment was collected.
type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota
	Cash
	BankTransfer
	MobileMoney
	OtherMethod
)

func paymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		Cash:         "cash",
		BankTransfer: "bank_transfer",
		MobileMoney:  "mobile_money",
		OtherMethod:  "other",
	}
}

// PaymentMethodFromString parses the wire representation of a payment
// method. Unrecognized values are rejected.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range paymentMethodStrings() {
		if str == strings.ToLower(strings.TrimSpace(s)) {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a recognized payment method", s))
}

// String returns the canonical lowercase name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := paymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Validate reports whether the method is one of the defined values.
func (m PaymentMethod) Validate() error {
	if _, ok := paymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// ErrPaymentIsNotConstructed is returned when a Payment was not created
// through NewPayment.
var ErrPaymentIsNotConstructed = errs.NewValueIsRequiredError(
	"Payment must be created via NewPayment constructor")

// Payment is an immutable record of a single collected amount. Once
// appended to an order's history it never changes; refunds are not modeled.
type Payment struct {
	amount     kernel.Money
	method     PaymentMethod
	notes      string
	recordedAt time.Time

	isConstructed bool
}

// NewPayment creates a payment record. The amount must be strictly
// positive; whether it fits the order's remaining balance is checked by the
// order when the payment is appended.
func NewPayment(amount kernel.Money, method PaymentMethod, notes string, recordedAt time.Time) (Payment, error) {
	if !amount.IsPositive() {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	if err := method.Validate(); err != nil {
		return Payment{}, err
	}
	if recordedAt.IsZero() {
		return Payment{}, errs.NewValueIsRequiredError("recordedAt")
	}

	return Payment{
		amount:        amount,
		method:        method,
		notes:         notes,
		recordedAt:    recordedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Payment was created through NewPayment.
func (p Payment) Validate() error {
	if !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// Amount returns the collected amount.
func (p Payment) Amount() kernel.Money {
	return p.amount
}

// Method returns how the payment was collected.
func (p Payment) Method() PaymentMethod {
	return p.method
}

// Notes returns the optional free-form note attached at collection time.
func (p Payment) Notes() string {
	return p.notes
}

// RecordedAt returns when the payment was collected.
func (p Payment) RecordedAt() time.Time {
	return p.recordedAt
}
