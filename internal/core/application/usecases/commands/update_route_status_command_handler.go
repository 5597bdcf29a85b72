package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// UpdateRouteStatusCommandHandler is the route status transition engine.
//
// In one transaction it checks the transition, writes the route guarded by
// its version, locks the orders the new status can move, cascades the status
// to them and appends one history row per changed order. After a successful
// commit the cached histories of the changed orders are invalidated.
//
// Any failure before commit rolls everything back: a rejected transition or a
// lost version race leaves the route, its orders and the history untouched.
type UpdateRouteStatusCommandHandler struct {
	uowFactory UoWFactory
	cache      ports.OrderStatusHistoryCache
	cascade    services.StatusCascade
	logger     *slog.Logger
}

func NewUpdateRouteStatusCommandHandler(
	uowFactory UoWFactory,
	cache ports.OrderStatusHistoryCache,
	logger *slog.Logger,
) UpdateRouteStatusCommandHandler {
	return UpdateRouteStatusCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		cascade:    services.NewStatusCascade(),
		logger:     logger.With("component", "route_status"),
	}
}

func (h *UpdateRouteStatusCommandHandler) Handle(ctx context.Context, cmd UpdateRouteStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	r, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = r.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, r); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.LockByRoute(ctx, r.ID(), h.cascade.AffectedStatuses(cmd.Status())...)
	if err != nil {
		return err
	}

	changes, err := h.cascade.Apply(cmd.Status(), orders, time.Now())
	if err != nil {
		return err
	}

	if err = persistChanges(ctx, orderRepo, uow.OrderStatusHistoryRepository(), orders, changes); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "route status changed",
		"route_id", r.ID().String(),
		"status", cmd.Status().String(),
		"orders_changed", len(changes),
	)

	invalidateHistory(ctx, h.cache, h.logger, changedOrderIDs(changes))
	return nil
}
