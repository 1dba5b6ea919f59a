package commands_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/events"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/schedule"
	"catering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) AppendPayment(ctx context.Context, o *order.Order, p order.Payment) error {
	args := m.Called(ctx, o, p)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateScheduleAssignment(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllAwaitingFinalPayment(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockScheduleRepository struct{ mock.Mock }

func (m *MockScheduleRepository) Add(ctx context.Context, s *schedule.Schedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScheduleRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*schedule.Schedule, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.Schedule), args.Error(1)
}

// MockUoW serves both the order-only and cross-aggregate unit of work
// interfaces.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ScheduleRepository() ports.ScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.ScheduleRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishStatusChanged(event events.StatusChanged) {
	m.Called(event)
}

func (m *MockEventPublisher) PublishPaymentRecorded(event events.PaymentRecorded) {
	m.Called(event)
}

type MockNotificationClient struct{ mock.Mock }

func (m *MockNotificationClient) Notify(ctx context.Context, contact, message string) error {
	args := m.Called(ctx, contact, message)
	return args.Error(0)
}

// Test fixtures shared by the handler tests.

func testMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

func testItems(t *testing.T, totalCents int64) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), 1, testMoney(t, totalCents))
	require.NoError(t, err)
	return []order.LineItem{item}
}

// testOrder builds an aggregate with the given type and total in cents.
func testOrder(t *testing.T, orderType order.OrderType, totalCents int64) *order.Order {
	t.Helper()
	var deliveryDate *time.Time
	if orderType == order.Scheduled {
		d := time.Now().AddDate(0, 0, 3)
		deliveryDate = &d
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		testItems(t, totalCents), orderType, deliveryDate, time.Now())
	require.NoError(t, err)
	return o
}

func payOrder(t *testing.T, o *order.Order, cents int64) {
	t.Helper()
	p, err := order.NewPayment(testMoney(t, cents), order.Cash, "", time.Now())
	require.NoError(t, err)
	require.NoError(t, o.RecordPayment(p))
}
