package schedule

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// ErrScheduleIsNotConstructed is returned when a Schedule instance was not
// created through NewSchedule or RestoreSchedule.
var ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule or RestoreSchedule")

// Status is the lifecycle state of a schedule record. Assigned is the only
// and terminal state in this model: a schedule is never reassigned or
// released, only rejected at creation when one already exists.
type Status int

const (
	Unknown Status = iota
	Assigned
)

// String returns the canonical lowercase name of the status.
func (s Status) String() string {
	if s == Assigned {
		return "assigned"
	}
	return "unknown"
}

// Validate reports whether the status is a defined value.
func (s Status) Validate() error {
	if s != Assigned {
		return errs.NewValueIsInvalidError("schedule status")
	}
	return nil
}

// Schedule binds one staff member to one order for fulfillment. At most one
// schedule exists per order; uniqueness is enforced both here on the order
// aggregate and by a unique database constraint on the order reference.
type Schedule struct {
	id         kernel.UUID
	orderID    kernel.UUID
	staffID    kernel.UUID
	shiftLabel string
	date       time.Time
	status     Status

	isConstructed bool
}

// NewSchedule creates an assignment of staff to an order for a shift on a
// given date.
func NewSchedule(
	id kernel.UUID,
	orderID kernel.UUID,
	staffID kernel.UUID,
	shiftLabel string,
	date time.Time,
) (*Schedule, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		staffID.Validate(),
	); err != nil {
		return nil, err
	}

	if shiftLabel == "" {
		return nil, errs.NewValueIsRequiredError("shiftLabel")
	}
	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("date")
	}

	return &Schedule{
		id:            id,
		orderID:       orderID,
		staffID:       staffID,
		shiftLabel:    shiftLabel,
		date:          date,
		status:        Assigned,
		isConstructed: true,
	}, nil
}

// RestoreSchedule reconstructs a schedule from persistence.
func RestoreSchedule(
	id kernel.UUID,
	orderID kernel.UUID,
	staffID kernel.UUID,
	shiftLabel string,
	date time.Time,
	status Status,
) (*Schedule, error) {
	s, err := NewSchedule(id, orderID, staffID, shiftLabel, date)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	s.status = status
	return s, nil
}

// Validate ensures the Schedule was created through a constructor.
func (s *Schedule) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrScheduleIsNotConstructed
	}
	return nil
}

// ID returns the schedule's unique identifier.
func (s *Schedule) ID() kernel.UUID {
	return s.id
}

// OrderID returns the bound order.
func (s *Schedule) OrderID() kernel.UUID {
	return s.orderID
}

// StaffID returns the assigned staff member.
func (s *Schedule) StaffID() kernel.UUID {
	return s.staffID
}

// ShiftLabel returns the shift the assignment covers.
func (s *Schedule) ShiftLabel() string {
	return s.shiftLabel
}

// Date returns the day of the shift.
func (s *Schedule) Date() time.Time {
	return s.date
}

// Status returns the schedule status (always assigned in this model).
func (s *Schedule) Status() Status {
	return s.status
}
