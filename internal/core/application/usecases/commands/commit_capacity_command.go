package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCommitCapacityCommandIsNotConstructed = errors.New(
	"CommitCapacityCommand must be created via NewCommitCapacityCommand constructor",
)

// CommitCapacityCommand reserves an order's weight and volume on the
// transporter that drives a route.
type CommitCapacityCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCommitCapacityCommand(routeID, orderID kernel.UUID) (CommitCapacityCommand, error) {
	command := CommitCapacityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRouteID(routeID),
		command.setOrderID(orderID),
	); err != nil {
		return CommitCapacityCommand{}, err
	}

	return command, nil
}

func (c CommitCapacityCommand) Validate() error {
	return c.guard.Validate(ErrCommitCapacityCommandIsNotConstructed)
}

func (c CommitCapacityCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c CommitCapacityCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CommitCapacityCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("routeID", err)
	}

	c.routeID = routeID
	return nil
}

func (c *CommitCapacityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}
