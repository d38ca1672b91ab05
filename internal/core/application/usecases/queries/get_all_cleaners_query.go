package queries

import (
	"errors"

	"cleaning/internal/pkg/guard"
)

var (
	ErrGetAllCleanersQueryIsNotConstructed = errors.New(
		"GetAllCleanersQuery must be created via NewGetAllCleanersQuery constructor",
	)
)

// GetAllCleanersQuery retrieves every cleaner profile for the administrative
// dashboard, together with the active order each cleaner currently holds.
type GetAllCleanersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCleanersQuery creates a query to retrieve all cleaner profiles.
// This is a parameterless administrative query.
func NewGetAllCleanersQuery() GetAllCleanersQuery {
	return GetAllCleanersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCleanersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCleanersQueryIsNotConstructed)
}

// GetAllCleanersQueryResponse represents a cleaner row on the dashboard.
// ActiveOrderID is nil when the cleaner holds no order in an active status;
// it is computed from the order store, not from the advisory index.
type GetAllCleanersQueryResponse struct {
	UserID        int64
	Name          string
	City          string
	Available     bool
	ActiveOrderID *int64
}
