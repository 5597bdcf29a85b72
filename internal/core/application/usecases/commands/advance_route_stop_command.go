package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAdvanceRouteStopCommandIsNotConstructed = errors.New(
	"AdvanceRouteStopCommand must be created via NewAdvanceRouteStopCommand constructor",
)

// AdvanceRouteStopCommand moves a route to its next stop.
type AdvanceRouteStopCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAdvanceRouteStopCommand(routeID kernel.UUID) (AdvanceRouteStopCommand, error) {
	command := AdvanceRouteStopCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRouteID(routeID); err != nil {
		return AdvanceRouteStopCommand{}, err
	}

	return command, nil
}

func (c AdvanceRouteStopCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceRouteStopCommandIsNotConstructed)
}

func (c AdvanceRouteStopCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c *AdvanceRouteStopCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("routeID", err)
	}

	c.routeID = routeID
	return nil
}
