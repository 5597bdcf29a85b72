// Package transporterrepo persists transporter profiles and their remaining
// carrying capacity.
package transporterrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transporter"
)

// TransporterDTO is the "transporters" row, keyed by the transporter's user id.
type TransporterDTO struct {
	UserID      string    `gorm:"type:varchar(36);primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	VehicleType string    `gorm:"type:varchar(50);not null"`
	MaxWeight   float64   `gorm:"type:decimal(14,3);not null"`
	MaxVolume   float64   `gorm:"type:decimal(14,3);not null"`
	Available   bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (TransporterDTO) TableName() string {
	return "transporters"
}

func fromDomain(aggregate *transporter.Transporter) TransporterDTO {
	return TransporterDTO{
		UserID:      aggregate.UserID().String(),
		Name:        aggregate.Name(),
		VehicleType: aggregate.VehicleType(),
		MaxWeight:   aggregate.MaxWeight(),
		MaxVolume:   aggregate.MaxVolume(),
		Available:   aggregate.Available(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto TransporterDTO) (*transporter.Transporter, error) {
	userID, err := kernel.UUIDFromString(dto.UserID)
	if err != nil {
		return nil, err
	}

	return transporter.RestoreTransporter(
		userID,
		dto.Name,
		dto.VehicleType,
		dto.MaxWeight,
		dto.MaxVolume,
		dto.Available,
		dto.CreatedAt,
	)
}
