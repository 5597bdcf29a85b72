// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Identifiers are stored as canonical strings and measures as fixed-point
// decimals so the same schema serves PostgreSQL and MySQL.
type OrderDTO struct {
	ID                 string     `gorm:"type:varchar(36);primaryKey"`
	UserID             string     `gorm:"type:varchar(36);index;not null"`
	Weight             float64    `gorm:"type:decimal(14,3);not null"`
	Length             float64    `gorm:"type:decimal(14,3);not null"`
	Width              float64    `gorm:"type:decimal(14,3);not null"`
	Height             float64    `gorm:"type:decimal(14,3);not null"`
	ProductType        string     `gorm:"type:varchar(100);not null"`
	DeliveryCity       string     `gorm:"type:varchar(100);not null"`
	DestinationAddress string     `gorm:"type:varchar(255);not null"`
	RouteID            *string    `gorm:"type:varchar(36);index:idx_orders_route_status"`
	Status             string     `gorm:"type:varchar(20);not null;index:idx_orders_route_status"`
	CreatedAt          time.Time  `gorm:"not null"`
	DeliveredAt        *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var routeID *string
	if id := aggregate.RouteID(); id != nil {
		raw := id.String()
		routeID = &raw
	}

	dims := aggregate.Dimensions()
	return OrderDTO{
		ID:                 aggregate.ID().String(),
		UserID:             aggregate.UserID().String(),
		Weight:             dims.Weight(),
		Length:             dims.Length(),
		Width:              dims.Width(),
		Height:             dims.Height(),
		ProductType:        aggregate.ProductType(),
		DeliveryCity:       aggregate.DeliveryCity().Name(),
		DestinationAddress: aggregate.DestinationAddress(),
		RouteID:            routeID,
		Status:             aggregate.Status().String(),
		CreatedAt:          aggregate.CreatedAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
	}
}

// toDomain rebuilds the aggregate through RestoreOrder so stored rows pass
// the same invariants as new orders.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromString(dto.UserID)
	if err != nil {
		return nil, err
	}

	var routeID *kernel.UUID
	if dto.RouteID != nil {
		rID, routeErr := kernel.UUIDFromString(*dto.RouteID)
		if routeErr != nil {
			return nil, routeErr
		}
		routeID = &rID
	}

	dims, err := kernel.NewDimensions(dto.Weight, dto.Length, dto.Width, dto.Height)
	if err != nil {
		return nil, err
	}

	city, err := kernel.NewCity(dto.DeliveryCity)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		dims,
		dto.ProductType,
		city,
		dto.DestinationAddress,
		routeID,
		status,
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}

func statusStrings(statuses []order.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}
