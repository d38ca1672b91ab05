// Package ports defines repository interfaces for the cleaning domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"cleaning/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// It is the single mutation surface of the Order Entity Store; read-side
// projections query the store directly and never go through this interface.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns it the store-generated
	// identifier via AssignID.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate retrieves an order by id with a row lock.
	// Must be called inside a transaction; concurrent callers serialize on
	// the order row, which is what makes claim and transition atomic.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// GetActiveByCleanerForUpdate retrieves the cleaner's orders in the
	// active subset {accepted, going, started} with row locks. Used by the
	// claim transaction to check the exclusivity rule without a
	// read-then-write race.
	GetActiveByCleanerForUpdate(ctx context.Context, cleanerID int64) ([]*order.Order, error)

	// GetAllInActiveStatus retrieves all orders currently in an active
	// status. Used to rebuild the availability index.
	GetAllInActiveStatus(ctx context.Context) ([]*order.Order, error)
}
