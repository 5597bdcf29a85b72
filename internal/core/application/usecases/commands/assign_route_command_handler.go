package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// AssignRouteCommandHandler runs the full assignment flow in one transaction:
//  1. lock the order row and reject a duplicate assignment
//  2. load the route (completed or canceled routes take no orders) and its
//     transporter, check city and capacity
//  3. attach the route (only Pending orders qualify)
//  4. reserve capacity with the guarded decrement
//  5. persist the order
//
// The order row lock serializes concurrent assignments of one order, so a
// second caller sees the committed route and is rejected before it touches
// capacity. The capacity check in step 2 reads a snapshot and is advisory;
// step 4 is authoritative. Losing a race there surfaces as ErrInsufficientCapacity and
// rolls the whole assignment back.
type AssignRouteCommandHandler struct {
	uowFactory    UoWFactory
	compatibility services.RouteCompatibility
}

func NewAssignRouteCommandHandler(uowFactory UoWFactory) AssignRouteCommandHandler {
	return AssignRouteCommandHandler{
		uowFactory:    uowFactory,
		compatibility: services.NewRouteCompatibility(),
	}
}

func (h *AssignRouteCommandHandler) Handle(ctx context.Context, cmd AssignRouteCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.compatibility.CheckAssignment(o, cmd.RouteID()); err != nil {
		return err
	}

	r, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}
	if r.Status().IsTerminal() {
		return route.ErrRouteIsTerminal
	}

	transporterRepo := uow.TransporterRepository()
	t, err := transporterRepo.Get(ctx, r.TransporterID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		t, err = nil, nil
	}
	if err != nil {
		return err
	}

	if err = h.compatibility.CheckRoute(o, r, t); err != nil {
		return err
	}

	if err = o.AttachRoute(r.ID()); err != nil {
		return err
	}

	committed, err := transporterRepo.DecrementCapacityForOrder(ctx, r.ID(), o.ID())
	if err != nil {
		return err
	}
	if !committed {
		return services.ErrInsufficientCapacity
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
