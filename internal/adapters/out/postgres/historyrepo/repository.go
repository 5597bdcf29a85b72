package historyrepo

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormOrderStatusHistoryRepository implements ports.OrderStatusHistoryRepository.
type GormOrderStatusHistoryRepository struct {
	db *gorm.DB
}

func NewGormOrderStatusHistoryRepository(db *gorm.DB) *GormOrderStatusHistoryRepository {
	return &GormOrderStatusHistoryRepository{db: db}
}

// Append inserts all changes in one batch.
func (r *GormOrderStatusHistoryRepository) Append(ctx context.Context, changes ...order.StatusChange) error {
	if len(changes) == 0 {
		return nil
	}

	dtos := make([]OrderStatusHistoryDTO, 0, len(changes))
	for _, c := range changes {
		if err := c.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(c))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// ListByOrder returns the order's history oldest first. An unknown order
// yields an empty slice.
func (r *GormOrderStatusHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderStatusHistoryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.String()).
		Order("changed_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	history := make([]order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		change, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		history = append(history, change)
	}

	return history, nil
}
