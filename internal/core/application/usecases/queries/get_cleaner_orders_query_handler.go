package queries

import (
	"context"

	"cleaning/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCleanerOrdersQueryHandler retrieves a cleaner's assigned orders from the database.
type GetCleanerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCleanerOrdersQueryHandler creates a handler for cleaner order queries.
func NewGetCleanerOrdersQueryHandler(db *gorm.DB) GetCleanerOrdersQueryHandler {
	return GetCleanerOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the cleaner's assigned orders.
// Active orders come first, then the finished and paid history, newest first
// within each group.
func (h GetCleanerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCleanerOrdersQuery,
) ([]GetCleanerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCleanerOrdersQueryResponse, 0)

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
			phone,
			total_price,
			created_at
		FROM orders
		WHERE cleaner_id = ?
		ORDER BY status IN (?, ?, ?) DESC, created_at DESC, id DESC
	`, query.CleanerID(),
		order.Accepted.String(), order.Going.String(), order.Started.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetCleanerOrdersQueryResponse
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
			&orderResp.Phone,
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
