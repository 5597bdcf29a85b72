package services

import (
	"fmt"
	"slices"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
)

// StatusCascade propagates route events to the orders the route carries and
// produces one history entry per order it actually changed.
//
// Business rules:
//   - route in_transit: pending orders become in_transit
//   - route completed: every order not already completed becomes completed,
//     canceled ones included
//   - route canceled: pending and in_transit orders become canceled
//   - arrival at a stop: open orders for the stop's city become completed
//
// Orders outside AffectedStatuses are never touched, so repeating a cascade
// writes no duplicate history.
type StatusCascade struct{}

func NewStatusCascade() StatusCascade {
	return StatusCascade{}
}

// AffectedStatuses lists the order statuses a route status change can move.
// Repositories use it to lock only the rows the cascade will update.
func (StatusCascade) AffectedStatuses(target route.Status) []order.Status {
	switch target { //nolint:exhaustive // other statuses do not cascade
	case route.InTransit:
		return []order.Status{order.Pending}
	case route.Completed:
		return []order.Status{order.Pending, order.InTransit, order.Canceled}
	case route.Canceled:
		return []order.Status{order.Pending, order.InTransit}
	default:
		return nil
	}
}

// Apply cascades a route status change to its orders.
//
// Parameters:
//   - target: The status the route just moved to
//   - orders: Orders attached to the route (other orders must not be passed)
//   - at: Timestamp of the change
//
// Returns:
//   - []order.StatusChange: One entry per changed order, in input order
//   - error: Order validation failures
func (c StatusCascade) Apply(target route.Status, orders []*order.Order, at time.Time) ([]order.StatusChange, error) {
	changes := make([]order.StatusChange, 0, len(orders))

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if !slices.Contains(c.AffectedStatuses(target), o.Status()) {
			continue
		}

		comment, changed, err := c.follow(target, o, at)
		if err != nil {
			return nil, err
		}
		if !changed {
			continue
		}

		change, err := order.NewStatusChange(o.ID(), o.Status(), comment, at)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}

	return changes, nil
}

func (StatusCascade) follow(target route.Status, o *order.Order, at time.Time) (string, bool, error) {
	switch target { //nolint:exhaustive // other statuses do not cascade
	case route.InTransit:
		return "route departed", true, o.StartTransit()
	case route.Completed:
		return "route completed", true, o.ForceComplete(at)
	case route.Canceled:
		return "route canceled", true, o.Cancel()
	default:
		return "", false, nil
	}
}

// DeliverAt completes the open orders addressed to the city of the stop the
// route just reached.
func (StatusCascade) DeliverAt(stop route.Stop, orders []*order.Order, at time.Time) ([]order.StatusChange, error) {
	comment := fmt.Sprintf("delivered at stop %d (%s)", stop.Position(), stop.City())
	changes := make([]order.StatusChange, 0)

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if o.Status().IsTerminal() || !o.DeliveryCity().IsEqual(stop.City()) {
			continue
		}

		if err := o.Complete(at); err != nil {
			return nil, err
		}

		change, err := order.NewStatusChange(o.ID(), o.Status(), comment, at)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}

	return changes, nil
}
