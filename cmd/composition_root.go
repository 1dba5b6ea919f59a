package cmd

import (
	"log/slog"

	"catering/internal/adapters/out/notifier"
	"catering/internal/adapters/out/postgres"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/ports"
	"catering/internal/jobs"
	"catering/internal/notifications"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters into the application use cases.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher *notifications.Dispatcher
	notifier   ports.NotificationClient
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph. The notification dispatcher
// is created but not started; the caller owns its lifecycle.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	client := notifier.NewWebhookClient(config.NotificationWebhookURL, logger)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: notifications.NewDispatcher(client, logger),
		notifier:   client,
		logger:     logger,
	}
}

// Dispatcher returns the notification dispatcher for lifecycle control.
func (c *CompositionRoot) Dispatcher() *notifications.Dispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateAssignScheduleCommandHandler() commands.AssignScheduleCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignScheduleCommandHandler(f)
}

func (c *CompositionRoot) CreateSendPaymentRemindersCommandHandler() commands.SendPaymentRemindersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendPaymentRemindersCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersAwaitingPaymentQueryHandler() queries.GetOrdersAwaitingPaymentQueryHandler {
	return queries.NewGetOrdersAwaitingPaymentQueryHandler(c.gormDB)
}

// CreateJobManager builds the scheduled job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSendPaymentRemindersCommandHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
