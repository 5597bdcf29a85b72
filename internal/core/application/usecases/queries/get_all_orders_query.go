package queries

import (
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery lists orders oldest first, optionally narrowed to one
// status.
//
// Example:
//
//	query, err := NewGetAllOrdersQuery("pending")
//	if err != nil {
//	    return err
//	}
//	orders, err := NewGetAllOrdersQueryHandler(db).Handle(ctx, query)
type GetAllOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a listing query. An empty status lists every
// order; anything else must be a valid order status name.
func NewGetAllOrdersQuery(status string) (GetAllOrdersQuery, error) {
	q := GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
	if status == "" {
		return q, nil
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return GetAllOrdersQuery{}, err
	}
	q.status = &parsed
	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Status returns the filter and whether one is set.
func (q GetAllOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}
