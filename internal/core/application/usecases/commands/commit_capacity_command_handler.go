package commands

import (
	"context"
)

// CommitCapacityCommandHandler decrements the transporter capacity of a
// route by the size of an order.
//
// The decrement and its guard are a single conditional statement in the
// store, so concurrent commits against the same transporter can never drive
// either capacity below zero. Nothing is read beforehand.
type CommitCapacityCommandHandler struct {
	uowFactory TransporterUoWFactory
}

func NewCommitCapacityCommandHandler(uowFactory TransporterUoWFactory) CommitCapacityCommandHandler {
	return CommitCapacityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reports whether the capacity was committed. False means nothing
// changed: the order or route is unknown, the route's transporter has no
// record, or the remaining capacity is too small.
func (h *CommitCapacityCommandHandler) Handle(ctx context.Context, cmd CommitCapacityCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	committed, err := uow.TransporterRepository().DecrementCapacityForOrder(ctx, cmd.RouteID(), cmd.OrderID())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return committed, nil
}
