package commands

import (
	"errors"

	"catering/internal/pkg/guard"
)

var ErrSendPaymentRemindersCommandIsNotConstructed = errors.New(
	"SendPaymentRemindersCommand must be created via NewSendPaymentRemindersCommand constructor",
)

// SendPaymentRemindersCommand triggers a sweep over confirmed and
// in-progress orders that still carry an outstanding balance, nudging
// their customers. Parameterless; driven by the reminder job.
type SendPaymentRemindersCommand struct {
	guard guard.ConstructorGuard
}

// NewSendPaymentRemindersCommand creates the reminder sweep command.
func NewSendPaymentRemindersCommand() SendPaymentRemindersCommand {
	return SendPaymentRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SendPaymentRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendPaymentRemindersCommandIsNotConstructed)
}
