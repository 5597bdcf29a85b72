package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ValidateOrderRouteQueryHandler runs the route compatibility checks against
// current store contents and reports the first failing rule.
//
// Business rejections come back as a response with Success false; only store
// faults are returned as errors. The handler reads without locks, so a
// positive answer may be stale by the time capacity is committed.
type ValidateOrderRouteQueryHandler struct {
	orders        ports.OrderRepository
	routes        ports.RouteRepository
	transporters  ports.TransporterRepository
	compatibility services.RouteCompatibility
}

func NewValidateOrderRouteQueryHandler(
	orders ports.OrderRepository,
	routes ports.RouteRepository,
	transporters ports.TransporterRepository,
) ValidateOrderRouteQueryHandler {
	return ValidateOrderRouteQueryHandler{
		orders:        orders,
		routes:        routes,
		transporters:  transporters,
		compatibility: services.NewRouteCompatibility(),
	}
}

func (h ValidateOrderRouteQueryHandler) Handle(
	ctx context.Context,
	query ValidateOrderRouteQuery,
) (ValidateOrderRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidateOrderRouteQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return rejected(CodeOrderNotFound), nil
	}
	if err != nil {
		return ValidateOrderRouteQueryResponse{}, err
	}

	if err = h.compatibility.CheckAssignment(o, query.RouteID()); err != nil {
		return verdict(err)
	}

	r, err := h.routes.Get(ctx, query.RouteID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return rejected(CodeRouteNotFound), nil
	}
	if err != nil {
		return ValidateOrderRouteQueryResponse{}, err
	}

	t, err := h.transporters.Get(ctx, r.TransporterID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		t, err = nil, nil
	}
	if err != nil {
		return ValidateOrderRouteQueryResponse{}, err
	}

	return verdict(h.compatibility.CheckRoute(o, r, t))
}

func verdict(err error) (ValidateOrderRouteQueryResponse, error) {
	if err == nil {
		return ValidateOrderRouteQueryResponse{Success: true}, nil
	}

	var conflict *errs.ConflictError
	if errors.As(err, &conflict) {
		return rejected(conflict.Code), nil
	}
	return ValidateOrderRouteQueryResponse{}, err
}

func rejected(code string) ValidateOrderRouteQueryResponse {
	return ValidateOrderRouteQueryResponse{Error: code}
}
