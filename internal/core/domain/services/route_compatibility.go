package services

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/transporter"
	"logistics/internal/pkg/errs"
)

// Rejection reasons of the route compatibility check. Codes are part of the
// public API and must stay stable.
var (
	ErrOrderAlreadyHasRoute = errs.NewConflictError("ORDER_ALREADY_HAS_ROUTE", "order is already attached to this route")
	ErrInvalidDeliveryCity  = errs.NewConflictError("INVALID_DELIVERY_CITY", "route does not pass through the delivery city")
	ErrInsufficientCapacity = errs.NewConflictError("INSUFFICIENT_CAPACITY", "transporter capacity is too small for the order")
)

// RouteCompatibility decides whether an order can travel on a route.
//
// Business rules, checked in order:
//   - the order is not already attached to the route
//   - the route's destination or one of its stops is the order's delivery city
//   - the order's weight and volume fit the transporter's remaining capacity
//
// The check is advisory: capacity is reserved later by a single conditional
// store update, which is the only guard against overbooking.
//
// Example usage:
//
//	rc := services.NewRouteCompatibility()
//	if err := rc.CheckAssignment(o, routeID); err != nil {
//	    return err // ErrOrderAlreadyHasRoute
//	}
//	if err := rc.CheckRoute(o, r, t); err != nil {
//	    return err // ErrInvalidDeliveryCity or ErrInsufficientCapacity
//	}
type RouteCompatibility struct{}

func NewRouteCompatibility() RouteCompatibility {
	return RouteCompatibility{}
}

// CheckAssignment rejects an order already attached to routeID. It runs
// before the route is loaded.
func (RouteCompatibility) CheckAssignment(o *order.Order, routeID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.IsOnRoute(routeID) {
		return ErrOrderAlreadyHasRoute
	}
	return nil
}

// CheckRoute verifies the delivery city and the transporter capacity.
//
// Parameters:
//   - o: The order to deliver
//   - r: The candidate route
//   - t: The route's transporter; nil when no transporter record exists,
//     which counts as zero capacity
//
// Returns:
//   - nil when the order fits
//   - ErrInvalidDeliveryCity or ErrInsufficientCapacity (matched with errors.Is)
func (RouteCompatibility) CheckRoute(o *order.Order, r *route.Route, t *transporter.Transporter) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	if !r.Serves(o.DeliveryCity()) {
		return errs.NewConflictErrorWithCause(
			ErrInvalidDeliveryCity.Code,
			ErrInvalidDeliveryCity.Message,
			fmt.Errorf("%s is not on route %s", o.DeliveryCity(), r.ID()),
		)
	}

	if !t.CanCarry(o.Weight(), o.Volume()) {
		return errs.NewConflictErrorWithCause(
			ErrInsufficientCapacity.Code,
			ErrInsufficientCapacity.Message,
			capacityShortfall(o, t),
		)
	}

	return nil
}

func capacityShortfall(o *order.Order, t *transporter.Transporter) error {
	if t == nil {
		return fmt.Errorf("no transporter record, order needs weight %.3f volume %.3f", o.Weight(), o.Volume())
	}
	return fmt.Errorf("order needs weight %.3f volume %.3f, transporter has weight %.3f volume %.3f",
		o.Weight(), o.Volume(), t.MaxWeight(), t.MaxVolume())
}
