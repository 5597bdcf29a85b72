package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateRouteStatusCommandIsNotConstructed = errors.New(
	"UpdateRouteStatusCommand must be created via NewUpdateRouteStatusCommand constructor",
)

// UpdateRouteStatusCommand moves a route to a new status.
type UpdateRouteStatusCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	status  route.Status

	guard guard.ConstructorGuard
}

// NewUpdateRouteStatusCommand parses the wire value of the status
// ("pending", "in_transit", "completed" or "canceled").
func NewUpdateRouteStatusCommand(routeID kernel.UUID, status string) (UpdateRouteStatusCommand, error) {
	command := UpdateRouteStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRouteID(routeID),
		command.setStatus(status),
	); err != nil {
		return UpdateRouteStatusCommand{}, err
	}

	return command, nil
}

func (c UpdateRouteStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteStatusCommandIsNotConstructed)
}

func (c UpdateRouteStatusCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c UpdateRouteStatusCommand) Status() route.Status {
	return c.status
}

func (c *UpdateRouteStatusCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("routeID", err)
	}

	c.routeID = routeID
	return nil
}

func (c *UpdateRouteStatusCommand) setStatus(status string) error {
	parsed, err := route.ParseStatus(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}
