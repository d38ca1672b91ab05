package queries

import (
	"errors"
	"time"

	"cleaning/internal/pkg/guard"
)

var (
	ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
		"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
	)
)

// GetAvailableOrdersQuery retrieves the pending, unassigned orders a cleaner
// can claim, optionally narrowed to one city. This is the feed cleaners watch.
type GetAvailableOrdersQuery struct {
	city string

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for claimable orders.
// An empty city returns orders from every city.
func NewGetAvailableOrdersQuery(city string) GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{
		city:  city,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// City returns the city filter, empty for no filter.
func (q GetAvailableOrdersQuery) City() string {
	return q.city
}

// GetAvailableOrdersQueryResponse is the claim-feed order projection.
// The contact phone is withheld until the order is claimed.
type GetAvailableOrdersQueryResponse struct {
	ID           int64
	PropertyType string
	Rooms        int
	Bathrooms    int
	CleaningType string
	Address      string
	City         string
	TotalPrice   float64
	CreatedAt    time.Time
}
