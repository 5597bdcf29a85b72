package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetOrderStatusHistoryQueryIsNotConstructed = errors.New(
	"GetOrderStatusHistoryQuery must be created via NewGetOrderStatusHistoryQuery constructor",
)

// GetOrderStatusHistoryQuery retrieves the status timeline of one order.
type GetOrderStatusHistoryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderStatusHistoryQuery(orderID kernel.UUID) (GetOrderStatusHistoryQuery, error) {
	query := GetOrderStatusHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderStatusHistoryQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	query.orderID = orderID

	return query, nil
}

func (q GetOrderStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusHistoryQueryIsNotConstructed)
}

func (q GetOrderStatusHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderStatusHistoryQueryResponse is one entry of the timeline.
type GetOrderStatusHistoryQueryResponse struct {
	Status    string
	Timestamp time.Time
	Comment   string
}
