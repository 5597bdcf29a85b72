package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

const orderColumns = `
	id,
	user_id,
	status,
	delivery_city,
	destination_address,
	product_type,
	weight,
	length * width * height,
	route_id,
	created_at,
	delivered_at`

// GetOrderQueryHandler reads one order row without loading the aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order or errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`,
		query.OrderID().String(),
	).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return scanOrder(rows)
}

func scanOrder(rows *sql.Rows) (GetOrderQueryResponse, error) {
	var (
		resp        GetOrderQueryResponse
		id, userID  string
		routeID     sql.NullString
		deliveredAt sql.NullTime
	)

	err := rows.Scan(
		&id,
		&userID,
		&resp.Status,
		&resp.DeliveryCity,
		&resp.DestinationAddress,
		&resp.ProductType,
		&resp.Weight,
		&resp.Volume,
		&routeID,
		&resp.CreatedAt,
		&deliveredAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromString(id); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.UserID, err = kernel.UUIDFromString(userID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if routeID.Valid {
		parsed, parseErr := kernel.UUIDFromString(routeID.String)
		if parseErr != nil {
			return GetOrderQueryResponse{}, parseErr
		}
		resp.RouteID = &parsed
	}

	resp.CreatedAt = resp.CreatedAt.UTC()
	if deliveredAt.Valid {
		at := deliveredAt.Time.UTC()
		resp.DeliveredAt = &at
	}

	return resp, nil
}
