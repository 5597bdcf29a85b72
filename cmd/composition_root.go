package cmd

import (
	"log/slog"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/historyrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/transporterrepo"
	"logistics/internal/adapters/out/redis"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cache      ports.OrderStatusHistoryCache
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, redisClient goredis.UniversalClient, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      redis.NewHistoryCache(redisClient, configs.HistoryCacheTTL),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRouteCommandHandler() commands.AssignRouteCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateCommitCapacityCommandHandler() commands.CommitCapacityCommandHandler {
	var f commands.TransporterUoWFactory = FuncTransporterUoWFactory(func() commands.TransporterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCommitCapacityCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateRouteStatusCommandHandler() commands.UpdateRouteStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRouteStatusCommandHandler(f, c.cache, c.logger)
}

func (c *CompositionRoot) CreateAdvanceRouteStopCommandHandler() commands.AdvanceRouteStopCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceRouteStopCommandHandler(f, c.cache, c.logger)
}

func (c *CompositionRoot) CreateValidateOrderRouteQueryHandler() queries.ValidateOrderRouteQueryHandler {
	return queries.NewValidateOrderRouteQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		routerepo.NewGormRouteRepository(c.gormDB),
		transporterrepo.NewGormTransporterRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetOrderStatusHistoryQueryHandler() queries.GetOrderStatusHistoryQueryHandler {
	return queries.NewGetOrderStatusHistoryQueryHandler(
		historyrepo.NewGormOrderStatusHistoryRepository(c.gormDB),
		c.cache,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteOrdersQueryHandler() queries.GetRouteOrdersQueryHandler {
	return queries.NewGetRouteOrdersQueryHandler(c.gormDB)
}

// CreateHTTPHandlers assembles the use cases served by the REST adapter.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	createOrder := c.CreateCreateOrderCommandHandler()
	assignRoute := c.CreateAssignRouteCommandHandler()
	commitCapacity := c.CreateCommitCapacityCommandHandler()
	updateRouteStatus := c.CreateUpdateRouteStatusCommandHandler()
	advanceRouteStop := c.CreateAdvanceRouteStopCommandHandler()

	return httpadapter.Handlers{
		CreateOrder:        &createOrder,
		AssignRoute:        &assignRoute,
		CommitCapacity:     &commitCapacity,
		UpdateRouteStatus:  &updateRouteStatus,
		AdvanceRouteStop:   &advanceRouteStop,
		CheckCompatibility: c.CreateValidateOrderRouteQueryHandler(),
		StatusHistory:      c.CreateGetOrderStatusHistoryQueryHandler(),
		Order:              c.CreateGetOrderQueryHandler(),
		Orders:             c.CreateGetAllOrdersQueryHandler(),
		RouteOrders:        c.CreateGetRouteOrdersQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	advanceRouteStop := c.CreateAdvanceRouteStopCommandHandler()
	return jobs.NewJobManager(
		routerepo.NewGormRouteRepository(c.gormDB),
		&advanceRouteStop,
		c.configs.RouteSimulationSchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTransporterUoWFactory func() commands.TransporterUoW

func (f FuncTransporterUoWFactory) Create() commands.TransporterUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
