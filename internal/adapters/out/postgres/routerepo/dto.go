// Package routerepo persists route aggregates with their ordered stops.
package routerepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteDTO is the "routes" row. Version is the optimistic concurrency
// counter compared on every update.
type RouteDTO struct {
	ID            string         `gorm:"type:varchar(36);primaryKey"`
	TransporterID string         `gorm:"type:varchar(36);index;not null"`
	Origin        string         `gorm:"type:varchar(100);not null"`
	Destination   string         `gorm:"type:varchar(100);not null"`
	CurrentStop   int            `gorm:"not null;default:0"`
	Status        string         `gorm:"type:varchar(20);index;not null"`
	Version       int            `gorm:"not null;default:0"`
	CreatedAt     time.Time      `gorm:"not null"`
	Stops         []RouteStopDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

func (RouteDTO) TableName() string {
	return "routes"
}

// RouteStopDTO is one "route_stops" row. StopOrder is 1-based and unique
// within a route.
type RouteStopDTO struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	RouteID   string `gorm:"type:varchar(36);not null;uniqueIndex:idx_route_stops_order"`
	StopOrder int    `gorm:"not null;uniqueIndex:idx_route_stops_order"`
	City      string `gorm:"type:varchar(100);not null"`
}

func (RouteStopDTO) TableName() string {
	return "route_stops"
}

func fromDomain(aggregate *route.Route) RouteDTO {
	stops := make([]RouteStopDTO, 0, aggregate.StopCount())
	for _, s := range aggregate.Stops() {
		stops = append(stops, RouteStopDTO{
			RouteID:   aggregate.ID().String(),
			StopOrder: s.Position(),
			City:      s.City().Name(),
		})
	}

	return RouteDTO{
		ID:            aggregate.ID().String(),
		TransporterID: aggregate.TransporterID().String(),
		Origin:        aggregate.Origin().Name(),
		Destination:   aggregate.Destination().Name(),
		CurrentStop:   aggregate.CurrentStop(),
		Status:        aggregate.Status().String(),
		Version:       aggregate.Version(),
		CreatedAt:     aggregate.CreatedAt(),
		Stops:         stops,
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	transporterID, err := kernel.UUIDFromString(dto.TransporterID)
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewCity(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewCity(dto.Destination)
	if err != nil {
		return nil, err
	}

	stops := make([]route.Stop, 0, len(dto.Stops))
	for _, s := range dto.Stops {
		city, cityErr := kernel.NewCity(s.City)
		if cityErr != nil {
			return nil, cityErr
		}
		stop, stopErr := route.NewStop(s.StopOrder, city)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	status, err := route.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(
		id,
		transporterID,
		origin,
		destination,
		stops,
		dto.CurrentStop,
		status,
		dto.Version,
		dto.CreatedAt,
	)
}
