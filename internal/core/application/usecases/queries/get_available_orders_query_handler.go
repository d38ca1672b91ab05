package queries

import (
	"context"

	"cleaning/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler retrieves claimable orders from the database.
//
// The feed is a snapshot; by the time a cleaner claims an order from it,
// another cleaner may have taken it. Claiming re-checks under lock and the
// loser gets a conflict.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for the claim feed.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve pending unassigned orders,
// oldest first so long-waiting orders surface at the top.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			property_type,
			rooms,
			bathrooms,
			cleaning_type,
			address,
			city,
			total_price,
			created_at
		FROM orders
		WHERE status = ? AND cleaner_id IS NULL
	`
	args := []any{order.Pending.String()}

	if query.City() != "" {
		sql += " AND city = ?"
		args = append(args, query.City())
	}
	sql += " ORDER BY created_at, id"

	orders := make([]GetAvailableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAvailableOrdersQueryResponse

		err = rows.Scan(
			&orderResp.ID,
			&orderResp.PropertyType,
			&orderResp.Rooms,
			&orderResp.Bathrooms,
			&orderResp.CleaningType,
			&orderResp.Address,
			&orderResp.City,
			&orderResp.TotalPrice,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
