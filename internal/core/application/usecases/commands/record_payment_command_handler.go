package commands

import (
	"context"
	"time"

	"catering/internal/core/domain/events"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
)

// RecordPaymentCommandHandler appends a payment to an order's ledger.
// The order row is locked for the duration of the transaction, so the
// overpayment check always runs against the latest paid amount even when
// two staff members collect money for the same order concurrently.
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle records the payment and returns the updated order. The
// PaymentRecorded event is published only after the commit succeeds;
// notification failures never reach this handler's caller.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	payment, err := order.NewPayment(cmd.Amount(), cmd.Method(), cmd.Notes(), time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.RecordPayment(payment); err != nil {
		return nil, err
	}

	if err = orderRepo.AppendPayment(ctx, aggregate, payment); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.PublishPaymentRecorded(events.PaymentRecorded{
		OrderID:       aggregate.ID(),
		CustomerID:    aggregate.CustomerID(),
		Amount:        payment.Amount(),
		NewPaidAmount: aggregate.PaidAmount(),
		PaymentStatus: aggregate.PaymentStatus(),
	})

	return aggregate, nil
}
