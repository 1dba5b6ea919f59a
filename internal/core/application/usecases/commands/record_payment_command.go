package commands

import (
	"errors"
	"fmt"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand records a collected amount against an order's
// balance. The amount must be positive and, checked at apply time against
// the locked row, must not exceed the remaining balance.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  kernel.Money
	method  order.PaymentMethod
	notes   string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand validates and builds the command. The
// overpayment check happens in the handler against current state; here
// only the shape of the input is validated.
func NewRecordPaymentCommand(
	orderID kernel.UUID,
	amount kernel.Money,
	method order.PaymentMethod,
	notes string,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
		cmd.setMethod(method),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the order to record the payment against.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the collected amount.
func (c RecordPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns how the payment was collected.
func (c RecordPaymentCommand) Method() order.PaymentMethod {
	return c.method
}

// Notes returns the optional free-form note.
func (c RecordPaymentCommand) Notes() string {
	return c.notes
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}
