package cmd

import (
	"log/slog"

	httpin "cleaning/internal/adapters/in/http"
	"cleaning/internal/adapters/out/postgres"
	"cleaning/internal/adapters/out/postgres/orderrepo"
	"cleaning/internal/core/application/availability"
	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/core/application/usecases/queries"
	"cleaning/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config            Config
	gormDB            *gorm.DB
	uowFactory        postgres.GormUnitOfWorkFactory
	availabilityIndex *availability.Index
	logger            *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:            config,
		gormDB:            gormDB,
		uowFactory:        *postgres.NewGormUnitOfWorkFactory(gormDB),
		availabilityIndex: availability.NewIndex(),
		logger:            logger,
	}
}

func (c *CompositionRoot) AvailabilityIndex() *availability.Index {
	return c.availabilityIndex
}

// ActiveOrdersSource returns a repository bound to the shared connection for
// reads that do not need a transaction, such as the index rebuild.
func (c *CompositionRoot) ActiveOrdersSource() availability.ActiveOrdersSource {
	return orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f, c.availabilityIndex)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.availabilityIndex)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f, c.availabilityIndex)
}

func (c *CompositionRoot) CreateCreateCleanerCommandHandler() commands.CreateCleanerCommandHandler {
	var f commands.CleanerUoWFactory = FuncCleanerUoWFactory(func() commands.CleanerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCleanerCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCleanerAvailabilityCommandHandler() commands.SetCleanerAvailabilityCommandHandler {
	var f commands.CleanerUoWFactory = FuncCleanerUoWFactory(func() commands.CleanerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCleanerAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCleanerOrdersQueryHandler() queries.GetCleanerOrdersQueryHandler {
	return queries.NewGetCleanerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCleanersQueryHandler() queries.GetAllCleanersQueryHandler {
	return queries.NewGetAllCleanersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateClaimOrderCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateAssignOrderCommandHandler(),
		c.CreateCreateCleanerCommandHandler(),
		c.CreateSetCleanerAvailabilityCommandHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateGetCleanerOrdersQueryHandler(),
		c.CreateGetAvailableOrdersQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetAllCleanersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.availabilityIndex,
		c.ActiveOrdersSource(),
		c.config.AvailabilityRefreshSchedule,
		c.logger,
	)
}

// noopTracker satisfies the repository tracker dependency for read-only use
// outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ int64, _ any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCleanerUoWFactory func() commands.CleanerUoW

func (f FuncCleanerUoWFactory) Create() commands.CleanerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
