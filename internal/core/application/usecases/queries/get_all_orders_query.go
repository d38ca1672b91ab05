package queries

import (
	"errors"
	"time"

	"cleaning/internal/core/domain/model/order"
	"cleaning/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every order for the administrative dashboard,
// optionally filtered by status and city.
type GetAllOrdersQuery struct {
	status *order.Status
	city   string

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for the administrative order list.
// A nil status and empty city return everything.
func NewGetAllOrdersQuery(status *order.Status, city string) (GetAllOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}

	return GetAllOrdersQuery{
		status: status,
		city:   city,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil for no filter.
func (q GetAllOrdersQuery) Status() *order.Status {
	return q.status
}

// City returns the city filter, empty for no filter.
func (q GetAllOrdersQuery) City() string {
	return q.city
}

// GetAllOrdersQueryResponse is the administrative order projection.
// Unlike the customer and cleaner projections it exposes both party
// identifiers.
type GetAllOrdersQueryResponse struct {
	ID           int64
	CustomerID   int64
	CleanerID    *int64
	Status       order.Status
	PropertyType string
	Rooms        int
	Bathrooms    int
	CleaningType string
	Address      string
	Apartment    string
	City         string
	Phone        string
	TotalPrice   float64
	CreatedAt    time.Time
}
