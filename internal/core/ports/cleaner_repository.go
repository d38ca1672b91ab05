package ports

import (
	"context"

	"cleaning/internal/core/domain/model/cleaner"
)

// CleanerRepository defines the persistence contract for cleaner profiles.
type CleanerRepository interface {
	// Add persists a new cleaner profile.
	// Fails if a profile already exists for the user.
	Add(ctx context.Context, aggregate *cleaner.Cleaner) error

	// Update persists changes to an existing cleaner profile.
	Update(ctx context.Context, aggregate *cleaner.Cleaner) error

	// Get retrieves a cleaner profile by the underlying user id.
	Get(ctx context.Context, userID int64) (*cleaner.Cleaner, error)

	// GetForUpdate retrieves a cleaner profile by user id with a row lock.
	// Must be called inside a transaction. Claims lock the claimant's row
	// before reading their active orders: when that set is empty there are no
	// order rows to lock, so the cleaner row is the only thing two concurrent
	// claims by the same cleaner can serialize on.
	GetForUpdate(ctx context.Context, userID int64) (*cleaner.Cleaner, error)

	// GetAll retrieves all cleaner profiles.
	GetAll(ctx context.Context) ([]*cleaner.Cleaner, error)
}
