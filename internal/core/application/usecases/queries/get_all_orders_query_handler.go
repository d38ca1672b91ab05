package queries

import (
	"context"
	"database/sql"

	"cleaning/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves orders for the administrative dashboard.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for administrative order queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders with the requested filters,
// newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			customer_id,
			cleaner_id,
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
		WHERE 1 = 1
	`
	args := make([]any, 0, 2)

	if query.Status() != nil {
		sqlText += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.City() != "" {
		sqlText += " AND city = ?"
		args = append(args, query.City())
	}
	sqlText += " ORDER BY created_at DESC, id DESC"

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAllOrdersQueryResponse
		var status string
		var cleanerID sql.NullInt64

		err = rows.Scan(
			&orderResp.ID,
			&orderResp.CustomerID,
			&cleanerID,
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

		if cleanerID.Valid {
			id := cleanerID.Int64
			orderResp.CleanerID = &id
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
