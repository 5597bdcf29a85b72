// Package historyrepo stores the append-only order status history.
package historyrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderStatusHistoryDTO is one "order_status_history" row. Rows are never
// updated or deleted.
type OrderStatusHistoryDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   string    `gorm:"type:varchar(36);index;not null"`
	Status    string    `gorm:"type:varchar(20);not null"`
	Comment   *string   `gorm:"type:text"`
	ChangedAt time.Time `gorm:"not null"`
}

func (OrderStatusHistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(change order.StatusChange) OrderStatusHistoryDTO {
	var comment *string
	if c := change.Comment(); c != "" {
		comment = &c
	}

	return OrderStatusHistoryDTO{
		OrderID:   change.OrderID().String(),
		Status:    change.Status().String(),
		Comment:   comment,
		ChangedAt: change.ChangedAt(),
	}
}

func toDomain(dto OrderStatusHistoryDTO) (order.StatusChange, error) {
	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return order.StatusChange{}, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.StatusChange{}, err
	}

	var comment string
	if dto.Comment != nil {
		comment = *dto.Comment
	}

	return order.NewStatusChange(orderID, status, comment, dto.ChangedAt)
}
