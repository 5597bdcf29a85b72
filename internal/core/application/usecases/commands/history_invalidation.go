package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// changedOrderIDs returns the distinct order identifiers of changes, in order
// of first appearance.
func changedOrderIDs(changes []order.StatusChange) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(changes))
	seen := make(map[kernel.UUID]struct{}, len(changes))
	for _, c := range changes {
		if _, ok := seen[c.OrderID()]; ok {
			continue
		}
		seen[c.OrderID()] = struct{}{}
		ids = append(ids, c.OrderID())
	}
	return ids
}

// invalidateHistory drops cached histories after a commit. The store already
// holds the new rows, so a cache fault only delays freshness until the TTL
// expires and is logged instead of returned.
func invalidateHistory(
	ctx context.Context,
	cache ports.OrderStatusHistoryCache,
	logger *slog.Logger,
	orderIDs []kernel.UUID,
) {
	if len(orderIDs) == 0 {
		return
	}
	if err := cache.Invalidate(ctx, orderIDs...); err != nil {
		logger.WarnContext(ctx, "failed to invalidate order status history cache",
			"orders", len(orderIDs),
			"error", err,
		)
	}
}

// persistChanges writes every order named in changes and appends the history
// rows, all inside the caller's transaction.
func persistChanges(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	historyRepo ports.OrderStatusHistoryRepository,
	orders []*order.Order,
	changes []order.StatusChange,
) error {
	if len(changes) == 0 {
		return nil
	}

	changed := make(map[kernel.UUID]struct{}, len(changes))
	for _, c := range changes {
		changed[c.OrderID()] = struct{}{}
	}

	for _, o := range orders {
		if _, ok := changed[o.ID()]; !ok {
			continue
		}
		if err := orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return historyRepo.Append(ctx, changes...)
}
