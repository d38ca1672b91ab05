package http

import (
	"time"

	"cleaning/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the booking payload submitted by a customer.
// The price is computed server side and cannot be supplied by the client.
type CreateOrderRequest struct {
	PropertyType string                   `json:"property_type"`
	Rooms        int                      `json:"rooms"`
	Bathrooms    int                      `json:"bathrooms"`
	CleaningType string                   `json:"cleaning_type"`
	Address      string                   `json:"address"`
	Apartment    string                   `json:"apartment"`
	City         string                   `json:"city"`
	Phone        string                   `json:"phone"`
	Latitude     *float64                 `json:"latitude,omitempty"`
	Longitude    *float64                 `json:"longitude,omitempty"`
	Items        []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is one add-on service line of a booking.
type CreateOrderItemRequest struct {
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID int64 `json:"id"`
}

// UpdateOrderStatusRequest is the cleaner's transition payload.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// AdminPatchOrderRequest is the administrative order update payload.
// Absent fields are left unchanged.
type AdminPatchOrderRequest struct {
	CleanerID *int64  `json:"cleaner_id,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// CreateCleanerRequest promotes an existing user account to a cleaner profile.
type CreateCleanerRequest struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	City   string `json:"city"`
}

// SetAvailabilityRequest flips a cleaner's availability switch.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// CustomerOrder is the customer-facing order representation.
type CustomerOrder struct {
	ID           int64     `json:"id"`
	Status       string    `json:"status"`
	PropertyType string    `json:"property_type"`
	Rooms        int       `json:"rooms"`
	Bathrooms    int       `json:"bathrooms"`
	CleaningType string    `json:"cleaning_type"`
	Address      string    `json:"address"`
	Apartment    string    `json:"apartment"`
	City         string    `json:"city"`
	TotalPrice   float64   `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

// CleanerOrder is the cleaner-facing order representation.
type CleanerOrder struct {
	ID           int64     `json:"id"`
	Status       string    `json:"status"`
	PropertyType string    `json:"property_type"`
	Rooms        int       `json:"rooms"`
	Bathrooms    int       `json:"bathrooms"`
	CleaningType string    `json:"cleaning_type"`
	Address      string    `json:"address"`
	Apartment    string    `json:"apartment"`
	City         string    `json:"city"`
	Phone        string    `json:"phone"`
	TotalPrice   float64   `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

// AvailableOrder is one row of the claim feed.
type AvailableOrder struct {
	ID           int64     `json:"id"`
	PropertyType string    `json:"property_type"`
	Rooms        int       `json:"rooms"`
	Bathrooms    int       `json:"bathrooms"`
	CleaningType string    `json:"cleaning_type"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	TotalPrice   float64   `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminOrder is the administrative order representation with both party identifiers.
type AdminOrder struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	CleanerID    *int64    `json:"cleaner_id,omitempty"`
	Status       string    `json:"status"`
	PropertyType string    `json:"property_type"`
	Rooms        int       `json:"rooms"`
	Bathrooms    int       `json:"bathrooms"`
	CleaningType string    `json:"cleaning_type"`
	Address      string    `json:"address"`
	Apartment    string    `json:"apartment"`
	City         string    `json:"city"`
	Phone        string    `json:"phone"`
	TotalPrice   float64   `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminCleaner is one row of the administrative cleaner list.
type AdminCleaner struct {
	UserID        int64  `json:"user_id"`
	Name          string `json:"name"`
	City          string `json:"city"`
	Available     bool   `json:"available"`
	ActiveOrderID *int64 `json:"active_order_id,omitempty"`
}

func toCustomerOrder(r queries.GetCustomerOrdersQueryResponse) CustomerOrder {
	return CustomerOrder{
		ID:           r.ID,
		Status:       r.Status.String(),
		PropertyType: r.PropertyType,
		Rooms:        r.Rooms,
		Bathrooms:    r.Bathrooms,
		CleaningType: r.CleaningType,
		Address:      r.Address,
		Apartment:    r.Apartment,
		City:         r.City,
		TotalPrice:   r.TotalPrice,
		CreatedAt:    r.CreatedAt,
	}
}

func toCleanerOrder(r queries.GetCleanerOrdersQueryResponse) CleanerOrder {
	return CleanerOrder{
		ID:           r.ID,
		Status:       r.Status.String(),
		PropertyType: r.PropertyType,
		Rooms:        r.Rooms,
		Bathrooms:    r.Bathrooms,
		CleaningType: r.CleaningType,
		Address:      r.Address,
		Apartment:    r.Apartment,
		City:         r.City,
		Phone:        r.Phone,
		TotalPrice:   r.TotalPrice,
		CreatedAt:    r.CreatedAt,
	}
}

func toAvailableOrder(r queries.GetAvailableOrdersQueryResponse) AvailableOrder {
	return AvailableOrder{
		ID:           r.ID,
		PropertyType: r.PropertyType,
		Rooms:        r.Rooms,
		Bathrooms:    r.Bathrooms,
		CleaningType: r.CleaningType,
		Address:      r.Address,
		City:         r.City,
		TotalPrice:   r.TotalPrice,
		CreatedAt:    r.CreatedAt,
	}
}

func toAdminOrder(r queries.GetAllOrdersQueryResponse) AdminOrder {
	return AdminOrder{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		CleanerID:    r.CleanerID,
		Status:       r.Status.String(),
		PropertyType: r.PropertyType,
		Rooms:        r.Rooms,
		Bathrooms:    r.Bathrooms,
		CleaningType: r.CleaningType,
		Address:      r.Address,
		Apartment:    r.Apartment,
		City:         r.City,
		Phone:        r.Phone,
		TotalPrice:   r.TotalPrice,
		CreatedAt:    r.CreatedAt,
	}
}

func toAdminCleaner(r queries.GetAllCleanersQueryResponse) AdminCleaner {
	return AdminCleaner{
		UserID:        r.UserID,
		Name:          r.Name,
		City:          r.City,
		Available:     r.Available,
		ActiveOrderID: r.ActiveOrderID,
	}
}
