package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GormOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *GormOrderRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GormOrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormOrderRepositoryTestSuite) newOrderRequest(zipRaw string, zone kernel.Zone, pickup time.Time) booking.OrderRequest {
	zip, err := kernel.NewZipCode(zipRaw)
	suite.Require().NoError(err)
	subtotal, err := kernel.NewMoneyFromString("30.00")
	suite.Require().NoError(err)
	surcharge := kernel.ZeroMoney()
	if zone == kernel.ZoneExtended {
		surcharge, err = kernel.NewMoneyFromString("5.00")
		suite.Require().NoError(err)
	}

	return booking.OrderRequest{
		ServiceID:           catalog.ServiceWashFold,
		ServiceName:         "Wash & Fold",
		EstimatedWeightLbs:  15,
		ItemQuantities:      map[string]int{"comforter": 1},
		PickupDate:          pickup,
		PickupTimeSlot:      kernel.TimeSlotMorning,
		Address:             "2801 W Bancroft St",
		ZipCode:             zip,
		Zone:                zone,
		SpecialInstructions: "Leave at the front desk",
		Breakdown: services.PriceBreakdown{
			Subtotal:  subtotal,
			Surcharge: surcharge,
			Total:     subtotal.Add(surcharge),
		},
	}
}

func (suite *GormOrderRepositoryTestSuite) newStoredOrder(status order.Status, pickup time.Time) *order.Order {
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), "Jordan Ellis",
		suite.newOrderRequest("43606", kernel.ZoneStandard, pickup),
		status, time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GormOrderRepositoryTestSuite) TestAddAndGet_RoundTripsAllFields() {
	ctx := context.Background()
	pickup := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	request := suite.newOrderRequest("43551", kernel.ZoneExtended, pickup)

	aggregate, err := order.NewOrder(kernel.NewUUID(), "Ada Lovelace", request, time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(aggregate))
	suite.Equal("Ada Lovelace", loaded.CustomerName())
	suite.Equal(catalog.ServiceWashFold, loaded.ServiceID())
	suite.Equal("Wash & Fold", loaded.ServiceName())
	suite.Equal(15, loaded.EstimatedWeightLbs())
	suite.Equal(map[string]int{"comforter": 1}, loaded.ItemQuantities())
	suite.Equal("43551", loaded.ZipCode().String())
	suite.Equal(kernel.ZoneExtended, loaded.Zone())
	suite.Equal(kernel.TimeSlotMorning, loaded.PickupTimeSlot())
	suite.Equal("Leave at the front desk", loaded.SpecialInstructions())
	suite.Equal("30.00", loaded.Subtotal().String())
	suite.Equal("5.00", loaded.Surcharge().String())
	suite.Equal("35.00", loaded.Total().String())
	suite.Equal(order.Received, loaded.Status())
	suite.Equal(pickup.Format("2006-01-02"), loaded.PickupDate().Format("2006-01-02"))
}

func (suite *GormOrderRepositoryTestSuite) TestGet_MissingOrder_ReturnsObjectNotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_PersistsStatusTransition() {
	ctx := context.Background()
	aggregate := suite.newStoredOrder(order.Received, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))

	err := aggregate.StartProcessing()
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, aggregate)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, loaded.Status())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_MissingOrder_ReturnsError() {
	pickup := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "Ada Lovelace",
		suite.newOrderRequest("43606", kernel.ZoneStandard, pickup), time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repo.Update(context.Background(), aggregate)

	suite.Require().Error(err)
}

func (suite *GormOrderRepositoryTestSuite) TestGetAllActive_FiltersFinalStatuses() {
	ctx := context.Background()
	pickup := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	received := suite.newStoredOrder(order.Received, pickup)
	processing := suite.newStoredOrder(order.Processing, pickup)
	ready := suite.newStoredOrder(order.Ready, pickup)
	delivered := suite.newStoredOrder(order.Delivered, pickup)
	cancelled := suite.newStoredOrder(order.Cancelled, pickup)

	active, err := suite.repo.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Len(active, 3)

	activeIDs := make(map[string]bool)
	for _, o := range active {
		activeIDs[o.ID().String()] = true
	}
	suite.True(activeIDs[received.ID().String()])
	suite.True(activeIDs[processing.ID().String()])
	suite.True(activeIDs[ready.ID().String()])
	suite.False(activeIDs[delivered.ID().String()])
	suite.False(activeIDs[cancelled.ID().String()])
}

func (suite *GormOrderRepositoryTestSuite) TestGetAllForPickupDate_FiltersByDate() {
	ctx := context.Background()
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	mondayOrder := suite.newStoredOrder(order.Received, monday)
	suite.newStoredOrder(order.Received, tuesday)
	suite.newStoredOrder(order.Cancelled, monday)

	result, err := suite.repo.GetAllForPickupDate(ctx, monday)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].IsEqual(mondayOrder))
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}
