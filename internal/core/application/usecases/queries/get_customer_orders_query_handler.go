package queries

import (
	"context"

	"cleaning/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's orders from the database.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the customer's orders, newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			property_type,
			rooms,
			bathrooms,
			cleaning_type,
			address,
			apartment,
			city,
			total_price,
			created_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.CustomerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetCustomerOrdersQueryResponse
		var status string

		err = rows.Scan(
			&orderResp.ID,
			&status,
			&orderResp.PropertyType,
			&orderResp.Rooms,
			&orderResp.Bathrooms,
			&orderResp.CleaningType,
			&orderResp.Address,
			&orderResp.Apartment,
			&orderResp.City,
			&orderResp.TotalPrice,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		orderResp.Status = orderStatus

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
