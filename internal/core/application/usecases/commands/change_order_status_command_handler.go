package commands

import (
	"context"

	"catering/internal/core/domain/events"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
)

// ChangeOrderStatusCommandHandler drives the order lifecycle machine.
// The aggregate enforces the one-step rule and the payment gates; because
// the order row is locked from read to commit, the confirmation gate sees
// a payment recorded by a concurrent staff member an instant earlier.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle applies the transition and returns the updated order. The
// StatusChanged event is published only after the commit succeeds.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.PublishStatusChanged(events.StatusChanged{
		OrderID:        aggregate.ID(),
		CustomerID:     aggregate.CustomerID(),
		PreviousStatus: previous,
		NewStatus:      aggregate.Status(),
	})

	return aggregate, nil
}
