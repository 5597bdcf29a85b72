// Package queries contains read-only operations of the logistics system.
// Query handlers never open a transaction and never change state, except
// for refreshing the derived status-history cache.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrValidateOrderRouteQueryIsNotConstructed = errors.New(
	"ValidateOrderRouteQuery must be created via NewValidateOrderRouteQuery constructor",
)

// Validation failure codes returned in ValidateOrderRouteQueryResponse.Error.
const (
	CodeOrderNotFound        = "ORDER_NOT_FOUND"
	CodeOrderAlreadyHasRoute = "ORDER_ALREADY_HAS_ROUTE"
	CodeRouteNotFound        = "ROUTE_NOT_FOUND"
	CodeInvalidDeliveryCity  = "INVALID_DELIVERY_CITY"
	CodeInsufficientCapacity = "INSUFFICIENT_CAPACITY"
)

// ValidateOrderRouteQuery asks whether an order could be assigned to a route.
//
// Example:
//
//	query, err := NewValidateOrderRouteQuery(orderID, routeID)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, query)
//	if err == nil && !result.Success {
//	    fmt.Println("rejected:", result.Error) // e.g. INSUFFICIENT_CAPACITY
//	}
type ValidateOrderRouteQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewValidateOrderRouteQuery(orderID, routeID kernel.UUID) (ValidateOrderRouteQuery, error) {
	query := ValidateOrderRouteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setRouteID(routeID),
	); err != nil {
		return ValidateOrderRouteQuery{}, err
	}

	return query, nil
}

func (q ValidateOrderRouteQuery) Validate() error {
	return q.guard.Validate(ErrValidateOrderRouteQueryIsNotConstructed)
}

func (q ValidateOrderRouteQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q ValidateOrderRouteQuery) RouteID() kernel.UUID {
	return q.routeID
}

func (q *ValidateOrderRouteQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	q.orderID = orderID
	return nil
}

func (q *ValidateOrderRouteQuery) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("routeID", err)
	}
	q.routeID = routeID
	return nil
}

// ValidateOrderRouteQueryResponse is the business verdict. Error holds one of
// the Code constants when Success is false.
type ValidateOrderRouteQueryResponse struct {
	Success bool
	Error   string
}
