package commands

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrAssignScheduleCommandIsNotConstructed = errors.New(
	"AssignScheduleCommand must be created via NewAssignScheduleCommand constructor",
)

// AssignScheduleCommand binds a staff member to an order for a shift.
// An order carries at most one schedule; a second assignment attempt is
// rejected at the data layer, not inferred from any caller-side cache.
type AssignScheduleCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	staffID    kernel.UUID
	shiftLabel string
	date       time.Time

	guard guard.ConstructorGuard
}

// NewAssignScheduleCommand validates and builds the command.
func NewAssignScheduleCommand(
	orderID kernel.UUID,
	staffID kernel.UUID,
	shiftLabel string,
	date time.Time,
) (AssignScheduleCommand, error) {
	cmd := AssignScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStaffID(staffID),
		cmd.setShift(shiftLabel, date),
	); err != nil {
		return AssignScheduleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignScheduleCommand) Validate() error {
	return c.guard.Validate(ErrAssignScheduleCommandIsNotConstructed)
}

// OrderID returns the order to schedule.
func (c AssignScheduleCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StaffID returns the staff member to assign.
func (c AssignScheduleCommand) StaffID() kernel.UUID {
	return c.staffID
}

// ShiftLabel returns the shift the assignment covers.
func (c AssignScheduleCommand) ShiftLabel() string {
	return c.shiftLabel
}

// Date returns the day of the shift.
func (c AssignScheduleCommand) Date() time.Time {
	return c.date
}

func (c *AssignScheduleCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignScheduleCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	c.staffID = staffID
	return nil
}

func (c *AssignScheduleCommand) setShift(shiftLabel string, date time.Time) error {
	if shiftLabel == "" {
		return errs.NewValueIsRequiredError("shiftLabel")
	}
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.shiftLabel = shiftLabel
	c.date = date
	return nil
}
