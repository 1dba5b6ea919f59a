package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/events"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRecordPaymentCommand_Validation(t *testing.T) {
	t.Run("zero amount", func(t *testing.T) {
		_, err := commands.NewRecordPaymentCommand(
			kernel.NewUUID(), kernel.ZeroMoney(), order.Cash, "")
		require.Error(t, err)
	})

	t.Run("empty order id", func(t *testing.T) {
		_, err := commands.NewRecordPaymentCommand(
			kernel.UUID{}, testMoney(t, 100), order.Cash, "")
		require.Error(t, err)
	})

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewRecordPaymentCommand(
			kernel.NewUUID(), testMoney(t, 100), order.BankTransfer, "wire ref 42")
		require.NoError(t, err)
		require.Equal(t, "wire ref 42", cmd.Notes())
	})
}

func TestRecordPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t, order.Urgent, 50000)
	cmd, err := commands.NewRecordPaymentCommand(
		aggregate.ID(), testMoney(t, 20000), order.Cash, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("AppendPayment", mock.Anything, aggregate, mock.AnythingOfType("order.Payment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishPaymentRecorded", mock.MatchedBy(func(e events.PaymentRecorded) bool {
		return e.OrderID.IsEqual(aggregate.ID()) &&
			e.NewPaidAmount.IsEqual(testMoney(t, 20000)) &&
			e.PaymentStatus == order.PartiallyPaid
	})).Once()

	h := commands.NewRecordPaymentCommandHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, updated.PaidAmount().IsEqual(testMoney(t, 20000)))
	require.Equal(t, order.PartiallyPaid, updated.PaymentStatus())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRecordPaymentCommandHandler_Handle_Overpayment(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t, order.Urgent, 50000)
	payOrder(t, aggregate, 40000)

	cmd, err := commands.NewRecordPaymentCommand(
		aggregate.ID(), testMoney(t, 20000), order.Cash, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewRecordPaymentCommandHandler(factory, publisher)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	// the rejected attempt must leave the ledger untouched
	require.True(t, aggregate.PaidAmount().IsEqual(testMoney(t, 40000)))
	repo.AssertNotCalled(t, "AppendPayment", mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishPaymentRecorded", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordPaymentCommandHandler_Handle_CancelledOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t, order.Urgent, 50000)
	require.NoError(t, aggregate.TransitionTo(order.Cancelled))

	cmd, err := commands.NewRecordPaymentCommand(
		aggregate.ID(), testMoney(t, 100), order.Cash, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewRecordPaymentCommandHandler(factory, publisher)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	publisher.AssertNotCalled(t, "PublishPaymentRecorded", mock.Anything)
}

func TestRecordPaymentCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(
		orderID, testMoney(t, 100), order.Cash, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPaymentCommandHandler(factory, new(MockEventPublisher))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
