package queries_test

import (
	"context"
	"testing"
	"time"

	"cleaning/internal/adapters/out/postgres/cleanerrepo"
	"cleaning/internal/adapters/out/postgres/orderrepo"
	"cleaning/internal/core/application/usecases/queries"
	"cleaning/internal/core/domain/model/cleaner"
	"cleaning/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' tracker dependency; query tests do
// not care about aggregate tracking.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ int64, _ any) {}

// OrderQueryHandlersTestSuite exercises the order projections against a real
// PostgreSQL instance, seeding data through the write-side repositories.
type OrderQueryHandlersTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	cleanerRepo *cleanerrepo.GormCleanerRepository
}

func (suite *OrderQueryHandlersTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&cleanerrepo.CleanerDTO{},
	))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.cleanerRepo = cleanerrepo.NewGormCleanerRepository(db, noopTracker{})
}

func (suite *OrderQueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE order_items, orders RESTART IDENTITY").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE cleaners").Error)
}

func (suite *OrderQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueryHandlersTestSuite) seedOrder(customerID int64, city string) *order.Order {
	details, err := order.NewDetails(
		"Apartment", 2, 1, "standard", "15 Abay Ave", "42", city, "+77010000000", nil)
	suite.Require().NoError(err)

	item, err := order.NewItem("Oven cleaning", 1, 4500)
	suite.Require().NoError(err)

	o, err := order.NewOrder(customerID, details, []order.Item{item}, 14000)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *OrderQueryHandlersTestSuite) claim(o *order.Order, cleanerID int64) {
	suite.Require().NoError(o.Claim(cleanerID))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), o))
}

func (suite *OrderQueryHandlersTestSuite) TestGetCustomerOrders_ReturnsOnlyOwnOrders() {
	mine := suite.seedOrder(7, "Almaty")
	suite.seedOrder(8, "Almaty")

	query, err := queries.NewGetCustomerOrdersQuery(7)
	suite.Require().NoError(err)

	handler := queries.NewGetCustomerOrdersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(mine.ID(), result[0].ID)
	suite.Equal(order.Pending, result[0].Status)
	suite.Equal("15 Abay Ave", result[0].Address)
	suite.InDelta(14000, result[0].TotalPrice, 0.001)
}

func (suite *OrderQueryHandlersTestSuite) TestGetCleanerOrders_ActiveFirst() {
	finished := suite.seedOrder(7, "Almaty")
	suite.claim(finished, 3)
	suite.Require().NoError(finished.Advance(3, order.Going))
	suite.Require().NoError(finished.Advance(3, order.Started))
	suite.Require().NoError(finished.Advance(3, order.Finished))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), finished))

	active := suite.seedOrder(8, "Almaty")
	suite.claim(active, 3)

	foreign := suite.seedOrder(9, "Almaty")
	suite.claim(foreign, 4)

	query, err := queries.NewGetCleanerOrdersQuery(3)
	suite.Require().NoError(err)

	handler := queries.NewGetCleanerOrdersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal(active.ID(), result[0].ID)
	suite.Equal(order.Accepted, result[0].Status)
	suite.Equal(finished.ID(), result[1].ID)
	suite.Equal(order.Finished, result[1].Status)
	suite.Equal("+77010000000", result[0].Phone)
}

func (suite *OrderQueryHandlersTestSuite) TestGetAvailableOrders_FiltersClaimedAndCity() {
	open := suite.seedOrder(7, "Almaty")
	suite.seedOrder(8, "Astana")
	claimed := suite.seedOrder(9, "Almaty")
	suite.claim(claimed, 3)

	handler := queries.NewGetAvailableOrdersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetAvailableOrdersQuery("Almaty"))
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(open.ID(), result[0].ID)

	all, err := handler.Handle(context.Background(), queries.NewGetAvailableOrdersQuery(""))
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *OrderQueryHandlersTestSuite) TestGetAllOrders_StatusFilterAndIdentifiers() {
	suite.seedOrder(7, "Almaty")
	accepted := suite.seedOrder(8, "Astana")
	suite.claim(accepted, 3)

	handler := queries.NewGetAllOrdersQueryHandler(suite.db)

	unfiltered, err := queries.NewGetAllOrdersQuery(nil, "")
	suite.Require().NoError(err)
	all, err := handler.Handle(context.Background(), unfiltered)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	status := order.Accepted
	filtered, err := queries.NewGetAllOrdersQuery(&status, "")
	suite.Require().NoError(err)
	result, err := handler.Handle(context.Background(), filtered)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(accepted.ID(), result[0].ID)
	suite.Equal(int64(8), result[0].CustomerID)
	suite.Require().NotNil(result[0].CleanerID)
	suite.Equal(int64(3), *result[0].CleanerID)
}

func (suite *OrderQueryHandlersTestSuite) TestGetAllCleaners_JoinsActiveOrder() {
	busy, err := cleaner.NewCleaner(3, "Aigerim", "Almaty")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.cleanerRepo.Add(context.Background(), busy))

	idle, err := cleaner.NewCleaner(4, "Dana", "Astana")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.cleanerRepo.Add(context.Background(), idle))
	idle.SetAvailability(false)
	suite.Require().NoError(suite.cleanerRepo.Update(context.Background(), idle))

	o := suite.seedOrder(7, "Almaty")
	suite.claim(o, 3)

	handler := queries.NewGetAllCleanersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetAllCleanersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal("Aigerim", result[0].Name)
	suite.Require().NotNil(result[0].ActiveOrderID)
	suite.Equal(o.ID(), *result[0].ActiveOrderID)
	suite.Equal("Dana", result[1].Name)
	suite.Nil(result[1].ActiveOrderID)
	suite.False(result[1].Available)
}

func TestOrderQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueryHandlersTestSuite))
}
