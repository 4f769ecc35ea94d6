package cmd

import (
	"log/slog"

	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/settingsrepo"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/settings"
	"laundry/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	catalog       catalog.Catalog
	settingsStore *settings.Store
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:       catalog.DefaultCatalog(),
		settingsStore: settings.NewStore(settings.Default()),
	}
}

func (c *CompositionRoot) Catalog() catalog.Catalog {
	return c.catalog
}

func (c *CompositionRoot) SettingsStore() *settings.Store {
	return c.settingsStore
}

func (c *CompositionRoot) CreateSubmitBookingCommandHandler() commands.SubmitBookingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitBookingCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStainRequestCommandHandler() commands.CreateStainRequestCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStainRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewStainRequestCommandHandler() commands.ReviewStainRequestCommandHandler {
	var f commands.StainRequestUoWFactory = FuncStainRequestUoWFactory(func() commands.StainRequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewStainRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersForPickupDateQueryHandler() queries.GetOrdersForPickupDateQueryHandler {
	return queries.NewGetOrdersForPickupDateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingStainRequestsQueryHandler() queries.GetPendingStainRequestsQueryHandler {
	return queries.NewGetPendingStainRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		settingsrepo.NewGormSettingsRepository(c.gormDB),
		c.settingsStore,
		c.CreateGetOrdersForPickupDateQueryHandler(),
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStainRequestUoWFactory func() commands.StainRequestUoW

func (f FuncStainRequestUoWFactory) Create() commands.StainRequestUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
