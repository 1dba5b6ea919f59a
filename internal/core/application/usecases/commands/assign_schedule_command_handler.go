package commands

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/schedule"
)

// AssignScheduleCommandHandler binds staff to orders exactly once.
// Duplicate assignments are rejected twice over: the locked order
// aggregate refuses a second schedule reference, and the schedules table's
// unique order constraint is the authoritative backstop for any writer
// that bypassed the aggregate.
type AssignScheduleCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignScheduleCommandHandler creates a handler for schedule assignment.
func NewAssignScheduleCommandHandler(uowFactory UoWFactory) AssignScheduleCommandHandler {
	return AssignScheduleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the schedule record and stamps its reference on the
// order, inside one transaction. Returns the created schedule.
func (h AssignScheduleCommandHandler) Handle(
	ctx context.Context,
	cmd AssignScheduleCommand,
) (*schedule.Schedule, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	scheduleRepo := uow.ScheduleRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	scheduleID := kernel.NewUUID()
	if err = aggregate.AssignSchedule(scheduleID); err != nil {
		return nil, err
	}

	newSchedule, err := schedule.NewSchedule(
		scheduleID, cmd.OrderID(), cmd.StaffID(), cmd.ShiftLabel(), cmd.Date())
	if err != nil {
		return nil, err
	}

	if err = scheduleRepo.Add(ctx, newSchedule); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateScheduleAssignment(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newSchedule, nil
}
