// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly with raw SQL and return flat
// role-scoped projections; they never load or mutate domain aggregates.
package queries

import (
	"errors"
	"time"

	"cleaning/internal/core/domain/model/order"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves the orders a customer has booked,
// newest first.
//
// Example:
//
//	query, _ := NewGetCustomerOrdersQuery(customerID)
//	handler := NewGetCustomerOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get customer orders: %w", err)
//	}
type GetCustomerOrdersQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's own orders.
func NewGetCustomerOrdersQuery(customerID int64) (GetCustomerOrdersQuery, error) {
	if customerID <= 0 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsInvalidError("customerID")
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the identifier of the requesting customer.
func (q GetCustomerOrdersQuery) CustomerID() int64 {
	return q.customerID
}

// GetCustomerOrdersQueryResponse is the customer-facing order projection.
// Omits the assigned cleaner's identity; customers track progress through the
// status alone.
type GetCustomerOrdersQueryResponse struct {
	ID           int64
	Status       order.Status
	PropertyType string
	Rooms        int
	Bathrooms    int
	CleaningType string
	Address      string
	Apartment    string
	City         string
	TotalPrice   float64
	CreatedAt    time.Time
}
