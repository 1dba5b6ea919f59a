package postgres_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/adapters/out/postgres"
	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/adapters/out/postgres/schedulerepo"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/schedule"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}, &orderrepo.PaymentDTO{},
		&schedulerepo.ScheduleDTO{}))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE schedules").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	scheduleID := kernel.NewUUID()
	suite.Require().NoError(aggregate.AssignSchedule(scheduleID))
	record, err := schedule.NewSchedule(scheduleID, aggregate.ID(), kernel.NewUUID(),
		"morning", time.Now().AddDate(0, 0, 1))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ScheduleRepository().Add(ctx, record))
	suite.Require().NoError(uow.OrderRepository().UpdateScheduleAssignment(ctx, aggregate))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	restored, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().True(restored.IsScheduled())
	suite.True(restored.ScheduleID().IsEqual(scheduleID))

	restoredSchedule, err := verify.ScheduleRepository().GetByOrderID(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(restoredSchedule.ID().IsEqual(scheduleID))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRowLock_BlocksConcurrentWriter() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(setup.Commit(ctx))

	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	locked, err := holder.OrderRepository().GetForUpdate(ctx, aggregate.ID())
	suite.Require().NoError(err)

	// a second locking read on the same row must wait for the first
	// transaction to finish
	contender := suite.factory.Create()
	suite.Require().NoError(contender.Begin(ctx))

	done := make(chan error, 1)
	go func() {
		_, contendErr := contender.OrderRepository().GetForUpdate(ctx, aggregate.ID())
		if contendErr == nil {
			contendErr = contender.Commit(ctx)
		}
		done <- contendErr
	}()

	select {
	case <-done:
		suite.Fail("second locking read acquired the row while it was held")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(locked.TransitionTo(order.Cancelled))
	suite.Require().NoError(holder.OrderRepository().UpdateStatus(ctx, locked))
	suite.Require().NoError(holder.Commit(ctx))

	select {
	case err = <-done:
		suite.Require().NoError(err)
	case <-time.After(5 * time.Second):
		suite.Fail("second locking read never acquired the row after release")
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	price, err := kernel.NewMoneyFromCents(75000)
	suite.Require().NoError(err)
	item, err := order.NewLineItem(kernel.NewUUID(), 2, price)
	suite.Require().NoError(err)

	deliveryDate := time.Now().AddDate(0, 0, 4)
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItem{item}, order.Scheduled, &deliveryDate, time.Now())
	suite.Require().NoError(err)
	return aggregate
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
