package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetRouteOrdersQueryHandler reads the orders of a route straight from the
// database without loading aggregates.
type GetRouteOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteOrdersQueryHandler creates a handler for route order queries.
// Requires a GORM database connection for query execution.
func NewGetRouteOrdersQueryHandler(db *gorm.DB) GetRouteOrdersQueryHandler {
	return GetRouteOrdersQueryHandler{db: db}
}

// Handle returns the route's orders oldest first. An unknown route yields an
// empty slice.
func (h GetRouteOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRouteOrdersQuery,
) ([]GetRouteOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetRouteOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			delivery_city,
			weight,
			length * width * height,
			delivered_at
		FROM orders
		WHERE route_id = ?
		ORDER BY created_at, id
	`, query.RouteID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        GetRouteOrdersQueryResponse
			id          string
			deliveredAt sql.NullTime
		)

		err = rows.Scan(
			&id,
			&resp.Status,
			&resp.DeliveryCity,
			&resp.Weight,
			&resp.Volume,
			&deliveredAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if deliveredAt.Valid {
			at := deliveredAt.Time.UTC()
			resp.DeliveredAt = &at
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
