package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAssignRouteCommandIsNotConstructed = errors.New(
	"AssignRouteCommand must be created via NewAssignRouteCommand constructor",
)

// AssignRouteCommand attaches an order to a route.
//
// Example:
//
//	cmd, err := NewAssignRouteCommand(orderID, routeID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrInsufficientCapacity) {
//	    // transporter is full
//	}
type AssignRouteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignRouteCommand(orderID, routeID kernel.UUID) (AssignRouteCommand, error) {
	command := AssignRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRouteID(routeID),
	); err != nil {
		return AssignRouteCommand{}, err
	}

	return command, nil
}

func (c AssignRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignRouteCommandIsNotConstructed)
}

func (c AssignRouteCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c *AssignRouteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("routeID", err)
	}

	c.routeID = routeID
	return nil
}
