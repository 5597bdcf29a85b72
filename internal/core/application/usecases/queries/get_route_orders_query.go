package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetRouteOrdersQueryIsNotConstructed = errors.New(
		"GetRouteOrdersQuery must be created via NewGetRouteOrdersQuery constructor",
	)
)

// GetRouteOrdersQuery lists the orders attached to a route, whatever their
// status. Dispatchers use it to see the load of a route and which parcels are
// still open.
//
// Example:
//
//	query, err := NewGetRouteOrdersQuery(routeID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetRouteOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get route orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %s to %s is %s\n", o.ID, o.DeliveryCity, o.Status)
//	}
type GetRouteOrdersQuery struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRouteOrdersQuery creates a query for the orders of routeID.
func NewGetRouteOrdersQuery(routeID kernel.UUID) (GetRouteOrdersQuery, error) {
	if err := routeID.Validate(); err != nil {
		return GetRouteOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("routeID", err)
	}

	return GetRouteOrdersQuery{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRouteOrdersQueryIsNotConstructed if validation fails.
func (q GetRouteOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteOrdersQueryIsNotConstructed)
}

func (q GetRouteOrdersQuery) RouteID() kernel.UUID {
	return q.routeID
}

// GetRouteOrdersQueryResponse is one order carried by the route.
type GetRouteOrdersQueryResponse struct {
	ID           kernel.UUID
	Status       string
	DeliveryCity string
	Weight       float64
	Volume       float64
	DeliveredAt  *time.Time
}
