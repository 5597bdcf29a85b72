package transporterrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transporter"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransporterRepository implements ports.TransporterRepository using GORM.
type GormTransporterRepository struct {
	db *gorm.DB
}

func NewGormTransporterRepository(db *gorm.DB) *GormTransporterRepository {
	return &GormTransporterRepository{db: db}
}

func (r *GormTransporterRepository) Add(ctx context.Context, aggregate *transporter.Transporter) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTransporterRepository) Get(ctx context.Context, userID kernel.UUID) (*transporter.Transporter, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto TransporterDTO
	err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transporter", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DecrementCapacityForOrder subtracts the order's weight and volume from the
// route transporter's capacity in a single UPDATE. The capacity check lives in
// the WHERE clause, so the row lock taken by the update serializes concurrent
// reservations and none of them can drive a capacity below zero.
func (r *GormTransporterRepository) DecrementCapacityForOrder(
	ctx context.Context,
	routeID, orderID kernel.UUID,
) (bool, error) {
	if err := errors.Join(routeID.Validate(), orderID.Validate()); err != nil {
		return false, err
	}

	db := r.db.WithContext(ctx)
	transporterID := db.Model(&routerepo.RouteDTO{}).
		Select("transporter_id").
		Where("id = ?", routeID.String())
	weight := db.Model(&orderrepo.OrderDTO{}).
		Select("weight").
		Where("id = ?", orderID.String())
	volume := db.Model(&orderrepo.OrderDTO{}).
		Select("length * width * height").
		Where("id = ?", orderID.String())

	result := db.Model(&TransporterDTO{}).
		Where("user_id = (?)", transporterID).
		Where("max_weight >= (?)", weight).
		Where("max_volume >= (?)", volume).
		Updates(map[string]any{
			"max_weight": gorm.Expr("max_weight - (?)", weight),
			"max_volume": gorm.Expr("max_volume - (?)", volume),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
