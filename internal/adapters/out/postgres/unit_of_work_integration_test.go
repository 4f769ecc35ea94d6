package postgres_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/settingsrepo"
	"laundry/internal/adapters/out/postgres/stainrepo"
	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/settings"
	"laundry/internal/core/domain/model/stain"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormUnitOfWorkTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *GormUnitOfWorkTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &stainrepo.StainRequestDTO{}, &settingsrepo.SettingDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *GormUnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormUnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, stain_requests, settings CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormUnitOfWorkTestSuite) newOrder() *order.Order {
	zip, err := kernel.NewZipCode("43606")
	suite.Require().NoError(err)
	subtotal, err := kernel.NewMoneyFromString("30.00")
	suite.Require().NoError(err)

	request := booking.OrderRequest{
		ServiceID:          catalog.ServiceWashFold,
		ServiceName:        "Wash & Fold",
		EstimatedWeightLbs: 15,
		PickupDate:         time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		PickupTimeSlot:     kernel.TimeSlotMorning,
		Address:            "2801 W Bancroft St",
		ZipCode:            zip,
		Zone:               kernel.ZoneStandard,
		Breakdown: services.PriceBreakdown{
			Subtotal:  subtotal,
			Surcharge: kernel.ZeroMoney(),
			Total:     subtotal,
		},
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), "Ada Lovelace", request, time.Now().UTC())
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	aggregate := suite.newOrder()
	err = uow.OrderRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	orderID := aggregate.ID()
	request, err := stain.NewRequest(kernel.NewUUID(), &orderID, "Wool coat", "Ink stain", time.Now().UTC())
	suite.Require().NoError(err)
	err = uow.StainRequestRepository().Add(ctx, request)
	suite.Require().NoError(err)

	err = uow.SettingsRepository().Upsert(ctx, settings.KeyWashFoldPerLb, "2.50")
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Everything is visible outside the transaction after commit.
	freshUow := suite.factory.Create()
	loaded, err := freshUow.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(aggregate))

	pending, err := freshUow.StainRequestRepository().GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(pending[0].IsEqual(request))

	values, err := freshUow.SettingsRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Equal("2.50", values[settings.KeyWashFoldPerLb])
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	aggregate := suite.newOrder()
	err = uow.OrderRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	freshUow := suite.factory.Create()
	_, err = freshUow.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().Error(err)
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	err := uow.Rollback(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *GormUnitOfWorkTestSuite) TestSettingsUpsert_OverwritesExistingKey() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.SettingsRepository().Upsert(ctx, settings.KeyDeliverySurcharge, "5.00")
	suite.Require().NoError(err)
	err = uow.SettingsRepository().Upsert(ctx, settings.KeyDeliverySurcharge, "7.50")
	suite.Require().NoError(err)

	values, err := uow.SettingsRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Equal("7.50", values[settings.KeyDeliverySurcharge])
}

func TestGormUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(GormUnitOfWorkTestSuite))
}
