package commands

import (
	"context"
	"fmt"
	"log/slog"

	"catering/internal/core/ports"
)

// SendPaymentRemindersCommandHandler notifies customers whose accepted
// orders still carry an outstanding balance. Delivery is best-effort: a
// failed notification is logged and the sweep moves on.
type SendPaymentRemindersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationClient
	logger     *slog.Logger
}

// NewSendPaymentRemindersCommandHandler creates a handler for the
// reminder sweep.
func NewSendPaymentRemindersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationClient,
	logger *slog.Logger,
) SendPaymentRemindersCommandHandler {
	return SendPaymentRemindersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "payment_reminders"),
	}
}

// Handle loads the open balances and sends one reminder per order.
// Returns the number of reminders attempted.
func (h SendPaymentRemindersCommandHandler) Handle(
	ctx context.Context,
	cmd SendPaymentRemindersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllAwaitingFinalPayment(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, aggregate := range orders {
		message := fmt.Sprintf(
			"A balance of %s remains on your order %s. Please settle it before delivery.",
			aggregate.RemainingBalance(), aggregate.ID())

		if notifyErr := h.notifier.Notify(ctx, aggregate.CustomerID().String(), message); notifyErr != nil {
			h.logger.WarnContext(ctx, "payment reminder failed",
				"order_id", aggregate.ID().String(), "error", notifyErr)
		}
	}

	return len(orders), nil
}
