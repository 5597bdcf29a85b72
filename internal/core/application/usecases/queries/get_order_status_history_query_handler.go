package queries

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// GetOrderStatusHistoryQueryHandler reads an order's status history through
// the cache.
//
// On a hit the cached copy is returned. On a miss, or when the cache fails,
// the history is loaded from the store ordered by change time and written
// back to the cache. Cache faults are logged and never fail the query.
//
// Example:
//
//	handler := NewGetOrderStatusHistoryQueryHandler(historyRepo, cache, logger)
//	query, _ := NewGetOrderStatusHistoryQuery(orderID)
//	history, err := handler.Handle(ctx, query)
//	for _, entry := range history {
//	    fmt.Println(entry.Timestamp, entry.Status, entry.Comment)
//	}
type GetOrderStatusHistoryQueryHandler struct {
	history ports.OrderStatusHistoryRepository
	cache   ports.OrderStatusHistoryCache
	logger  *slog.Logger
}

func NewGetOrderStatusHistoryQueryHandler(
	history ports.OrderStatusHistoryRepository,
	cache ports.OrderStatusHistoryCache,
	logger *slog.Logger,
) GetOrderStatusHistoryQueryHandler {
	return GetOrderStatusHistoryQueryHandler{
		history: history,
		cache:   cache,
		logger:  logger.With("component", "status_history"),
	}
}

func (h GetOrderStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusHistoryQuery,
) ([]GetOrderStatusHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cached, found, err := h.cache.Get(ctx, query.OrderID())
	if err != nil {
		h.logger.WarnContext(ctx, "status history cache read failed",
			"order_id", query.OrderID().String(),
			"error", err,
		)
	}
	if err == nil && found {
		return toHistoryResponse(cached), nil
	}

	changes, err := h.history.ListByOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.cache.Set(ctx, query.OrderID(), changes); err != nil {
		h.logger.WarnContext(ctx, "status history cache write failed",
			"order_id", query.OrderID().String(),
			"error", err,
		)
	}

	return toHistoryResponse(changes), nil
}

func toHistoryResponse(changes []order.StatusChange) []GetOrderStatusHistoryQueryResponse {
	out := make([]GetOrderStatusHistoryQueryResponse, 0, len(changes))
	for _, c := range changes {
		out = append(out, GetOrderStatusHistoryQueryResponse{
			Status:    c.Status().String(),
			Timestamp: c.ChangedAt(),
			Comment:   c.Comment(),
		})
	}
	return out
}
