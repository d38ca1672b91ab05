package queries

import (
	"errors"
	"time"

	"cleaning/internal/core/domain/model/order"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var (
	ErrGetCleanerOrdersQueryIsNotConstructed = errors.New(
		"GetCleanerOrdersQuery must be created via NewGetCleanerOrdersQuery constructor",
	)
)

// GetCleanerOrdersQuery retrieves the orders assigned to a cleaner,
// active ones first.
type GetCleanerOrdersQuery struct {
	cleanerID int64

	guard guard.ConstructorGuard
}

// NewGetCleanerOrdersQuery creates a query for a cleaner's assigned orders.
func NewGetCleanerOrdersQuery(cleanerID int64) (GetCleanerOrdersQuery, error) {
	if cleanerID <= 0 {
		return GetCleanerOrdersQuery{}, errs.NewValueIsInvalidError("cleanerID")
	}

	return GetCleanerOrdersQuery{
		cleanerID: cleanerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCleanerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCleanerOrdersQueryIsNotConstructed)
}

// CleanerID returns the identifier of the requesting cleaner.
func (q GetCleanerOrdersQuery) CleanerID() int64 {
	return q.cleanerID
}

// GetCleanerOrdersQueryResponse is the cleaner-facing order projection.
// Includes the full job sheet: property description, address, apartment and
// the contact phone the cleaner needs on site.
type GetCleanerOrdersQueryResponse struct {
	ID           int64
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
