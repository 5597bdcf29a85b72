package routerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// Add inserts the route row and all stop rows.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get loads a route with its stops ordered by position.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("stop_order")
		}).
		First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update writes status and current stop when the stored version matches the
// version the aggregate was loaded with. Stops are immutable and not touched.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&RouteDTO{}).
		Where("id = ? AND version = ?", aggregate.ID().String(), aggregate.Version()).
		Updates(map[string]any{
			"status":       aggregate.Status().String(),
			"current_stop": aggregate.CurrentStop(),
			"version":      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := db.Model(&RouteDTO{}).Where("id = ?", aggregate.ID().String()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("route", aggregate.ID().String())
	}
	return errs.NewVersionIsInvalidErrorWithCause("route")
}

// ListIDsByStatus returns the identifiers of routes in the given statuses.
func (r *GormRouteRepository) ListIDsByStatus(ctx context.Context, statuses ...route.Status) ([]kernel.UUID, error) {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}

	var raw []string
	err := r.db.WithContext(ctx).
		Model(&RouteDTO{}).
		Where("status IN ?", names).
		Order("created_at, id").
		Pluck("id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, parseErr := kernel.UUIDFromString(s)
		if parseErr != nil {
			return nil, parseErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}
