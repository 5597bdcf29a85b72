package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// AdvanceRouteStopCommandHandler is the stop progression engine.
//
// Each call moves the route one stop forward and completes the open orders
// addressed to the city of the reached stop. When the route runs out of stops
// it is completed and every order on it not yet completed is force-completed,
// canceled ones included. All
// writes share one transaction; the cache is invalidated after commit.
//
// Example:
//
//	handler := NewAdvanceRouteStopCommandHandler(uowFactory, cache, logger)
//	cmd, _ := NewAdvanceRouteStopCommand(routeID)
//	arrival, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, route.ErrRouteIsTerminal) {
//	    // route already finished, nothing changed
//	}
type AdvanceRouteStopCommandHandler struct {
	uowFactory UoWFactory
	cache      ports.OrderStatusHistoryCache
	cascade    services.StatusCascade
	logger     *slog.Logger
}

func NewAdvanceRouteStopCommandHandler(
	uowFactory UoWFactory,
	cache ports.OrderStatusHistoryCache,
	logger *slog.Logger,
) AdvanceRouteStopCommandHandler {
	return AdvanceRouteStopCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		cascade:    services.NewStatusCascade(),
		logger:     logger.With("component", "route_progression"),
	}
}

func (h *AdvanceRouteStopCommandHandler) Handle(ctx context.Context, cmd AdvanceRouteStopCommand) (route.Arrival, error) {
	if err := cmd.Validate(); err != nil {
		return route.Arrival{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return route.Arrival{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	r, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return route.Arrival{}, err
	}

	arrival, err := r.Advance()
	if err != nil {
		return route.Arrival{}, err
	}

	if err = routeRepo.Update(ctx, r); err != nil {
		return route.Arrival{}, err
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.LockByRoute(ctx, r.ID(), h.lockedStatuses(arrival)...)
	if err != nil {
		return route.Arrival{}, err
	}

	changes, err := h.deliver(arrival, orders, time.Now())
	if err != nil {
		return route.Arrival{}, err
	}

	if err = persistChanges(ctx, orderRepo, uow.OrderStatusHistoryRepository(), orders, changes); err != nil {
		return route.Arrival{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return route.Arrival{}, err
	}

	h.logger.InfoContext(ctx, "route advanced",
		"route_id", r.ID().String(),
		"position", arrival.Position,
		"reached_end", arrival.ReachedEnd,
		"orders_completed", len(changes),
	)

	invalidateHistory(ctx, h.cache, h.logger, changedOrderIDs(changes))
	return arrival, nil
}

// lockedStatuses widens the lock to canceled orders only when the route ends,
// since only route completion can move them.
func (h *AdvanceRouteStopCommandHandler) lockedStatuses(arrival route.Arrival) []order.Status {
	if arrival.ReachedEnd {
		return h.cascade.AffectedStatuses(route.Completed)
	}
	return []order.Status{order.Pending, order.InTransit}
}

// deliver completes the orders for the reached stop first, then closes the
// rest when the route ended. An order appears at most once in the result.
func (h *AdvanceRouteStopCommandHandler) deliver(
	arrival route.Arrival,
	orders []*order.Order,
	at time.Time,
) ([]order.StatusChange, error) {
	var changes []order.StatusChange

	if arrival.Stop != nil {
		delivered, err := h.cascade.DeliverAt(*arrival.Stop, orders, at)
		if err != nil {
			return nil, err
		}
		changes = append(changes, delivered...)
	}

	if arrival.ReachedEnd {
		closed, err := h.cascade.Apply(route.Completed, orders, at)
		if err != nil {
			return nil, err
		}
		changes = append(changes, closed...)
	}

	return changes, nil
}
