package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/core/domain/model/cleaner"
	"cleaning/internal/core/domain/model/order"
	"cleaning/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByCleanerForUpdate(ctx context.Context, cleanerID int64) ([]*order.Order, error) {
	args := m.Called(ctx, cleanerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInActiveStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCleanerRepository struct{ mock.Mock }

func (m *MockCleanerRepository) Add(ctx context.Context, c *cleaner.Cleaner) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCleanerRepository) Update(ctx context.Context, c *cleaner.Cleaner) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCleanerRepository) Get(ctx context.Context, userID int64) (*cleaner.Cleaner, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cleaner.Cleaner), args.Error(1)
}

func (m *MockCleanerRepository) GetForUpdate(ctx context.Context, userID int64) (*cleaner.Cleaner, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cleaner.Cleaner), args.Error(1)
}

func (m *MockCleanerRepository) GetAll(ctx context.Context) ([]*cleaner.Cleaner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cleaner.Cleaner), args.Error(1)
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

func (m *MockUoW) CleanerRepository() ports.CleanerRepository {
	args := m.Called()
	return args.Get(0).(ports.CleanerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
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

type MockCleanerUoW struct{ mock.Mock }

func (m *MockCleanerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCleanerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCleanerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCleanerUoW) CleanerRepository() ports.CleanerRepository {
	args := m.Called()
	return args.Get(0).(ports.CleanerRepository)
}

type MockCleanerUoWFactory struct{ mock.Mock }

func (m *MockCleanerUoWFactory) Create() commands.CleanerUoW {
	args := m.Called()
	return args.Get(0).(commands.CleanerUoW)
}

func testDetails(t *testing.T) order.Details {
	t.Helper()
	details, err := order.NewDetails(
		"Apartment", 2, 1, "standard", "15 Abay Ave", "42", "Almaty", "+77010000000", nil)
	require.NoError(t, err)
	return details
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("Oven cleaning", 1, 4500)
	require.NoError(t, err)
	return []order.Item{item}
}

func pendingOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(7, testDetails(t), testItems(t), 14000)
	require.NoError(t, err)
	require.NoError(t, o.AssignID(id))
	return o
}

func claimedOrder(t *testing.T, id int64, cleanerID int64) *order.Order {
	t.Helper()
	o := pendingOrder(t, id)
	require.NoError(t, o.Claim(cleanerID))
	return o
}

func availableCleaner(t *testing.T, userID int64) *cleaner.Cleaner {
	t.Helper()
	c, err := cleaner.NewCleaner(userID, "Aigerim", "Almaty")
	require.NoError(t, err)
	return c
}
