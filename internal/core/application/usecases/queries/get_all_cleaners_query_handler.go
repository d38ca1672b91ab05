package queries

import (
	"context"
	"database/sql"

	"cleaning/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllCleanersQueryHandler retrieves cleaner profiles for the administrative
// dashboard. The active order column is joined in from the order store so the
// dashboard shows authoritative occupancy, not the advisory cache.
type GetAllCleanersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCleanersQueryHandler creates a handler for cleaner list queries.
func NewGetAllCleanersQueryHandler(db *gorm.DB) GetAllCleanersQueryHandler {
	return GetAllCleanersQueryHandler{db: db}
}

// Handle executes the query to retrieve all cleaners sorted by name.
func (h GetAllCleanersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCleanersQuery,
) ([]GetAllCleanersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cleaners := make([]GetAllCleanersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.user_id,
			c.name,
			c.city,
			c.availability,
			o.id AS active_order_id
		FROM cleaners c
		LEFT JOIN orders o
			ON o.cleaner_id = c.user_id
			AND o.status IN (?, ?, ?)
		ORDER BY c.name, c.user_id
	`, order.Accepted.String(), order.Going.String(), order.Started.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cleanerResp GetAllCleanersQueryResponse
		var activeOrderID sql.NullInt64

		err = rows.Scan(
			&cleanerResp.UserID,
			&cleanerResp.Name,
			&cleanerResp.City,
			&cleanerResp.Available,
			&activeOrderID,
		)
		if err != nil {
			return nil, err
		}

		if activeOrderID.Valid {
			id := activeOrderID.Int64
			cleanerResp.ActiveOrderID = &id
		}

		cleaners = append(cleaners, cleanerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cleaners, nil
}
