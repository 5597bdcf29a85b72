package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderStatusHistoryRepository is the append-only store of order status
// changes.
type OrderStatusHistoryRepository interface {
	// Append stores the changes in the given order.
	Append(ctx context.Context, changes ...order.StatusChange) error

	// ListByOrder returns the history of an order ordered by change time.
	// An unknown order yields an empty list.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, error)
}

// OrderStatusHistoryCache is a read-through cache over the status history.
// Implementations may lose entries at any time; callers treat every error as
// a miss and fall back to the repository.
type OrderStatusHistoryCache interface {
	// Get returns the cached history and whether an entry was present.
	Get(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, bool, error)

	// Set stores the history for the configured time to live.
	Set(ctx context.Context, orderID kernel.UUID, history []order.StatusChange) error

	// Invalidate drops the cached histories of the given orders.
	Invalidate(ctx context.Context, orderIDs ...kernel.UUID) error
}
