package commands_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/stain"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validOrderRequest(t *testing.T) booking.OrderRequest {
	t.Helper()

	zip, err := kernel.NewZipCode("43606")
	require.NoError(t, err)
	subtotal, err := kernel.NewMoneyFromString("30.00")
	require.NoError(t, err)

	return booking.OrderRequest{
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
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
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

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllForPickupDate(ctx context.Context, date time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, date)
	return nil, args.Error(1)
}

type MockStainRequestRepository struct{ mock.Mock }

func (m *MockStainRequestRepository) Add(ctx context.Context, r *stain.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockStainRequestRepository) Update(ctx context.Context, r *stain.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockStainRequestRepository) Get(ctx context.Context, id kernel.UUID) (*stain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stain.Request), args.Error(1)
}

func (m *MockStainRequestRepository) GetAllPending(ctx context.Context) ([]*stain.Request, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStainRequestUoW struct{ mock.Mock }

func (m *MockStainRequestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStainRequestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStainRequestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStainRequestUoW) StainRequestRepository() ports.StainRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.StainRequestRepository)
}

type MockStainRequestUoWFactory struct{ mock.Mock }

func (m *MockStainRequestUoWFactory) Create() commands.StainRequestUoW {
	args := m.Called()
	return args.Get(0).(commands.StainRequestUoW)
}

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

func (m *MockUoW) StainRequestRepository() ports.StainRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.StainRequestRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
