// Package ports defines the persistence and cache contracts of the logistics
// domain. Interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate: route, status
	// and delivery time.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the surrounding
	// transaction ends. Concurrent writers of the same order wait for the lock
	// and then read the committed state.
	// Returns errs.ObjectNotFoundError when no such order exists.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// LockByRoute retrieves the orders attached to a route and locks their rows
	// until the surrounding transaction ends. When statuses are given only
	// orders in those statuses are returned.
	//
	// Example:
	//   orders, err := repo.LockByRoute(ctx, routeID, order.Pending, order.InTransit)
	LockByRoute(ctx context.Context, routeID kernel.UUID, statuses ...order.Status) ([]*order.Order, error)
}
