package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	   ┌─────────────────────────┐
//	Pending ──> InTransit ──> Completed
//	   │            │
//	   └──> Canceled <┘
//
// Completed and Canceled are terminal for stop deliveries and cancellation.
// A completed route still force-completes a canceled order (ForceComplete). Orders never move by themselves: the
// route they are attached to drives every change.
type Status int

const (
	// Unknown catches uninitialized and unparsable values.
	Unknown Status = iota

	// Pending is the initial status. The order may be attached to a route.
	Pending

	// InTransit means the route carrying the order has been dispatched.
	InTransit

	// Completed means the order reached its delivery city. Final state.
	Completed

	// Canceled means the route carrying the order was canceled. Final state.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		InTransit: "in_transit",
		Completed: "completed",
		Canceled:  "canceled",
	}
}

// ParseStatus converts the persisted/wire form ("pending", "in_transit",
// "completed", "canceled") back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name used in storage and the HTTP API.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// StartTransit moves Pending to InTransit.
func (s Status) StartTransit() (Status, error) {
	if s != Pending {
		return Unknown, transitionError(s, InTransit)
	}
	return InTransit, nil
}

// Complete moves Pending or InTransit to Completed. A pending order can be
// completed directly when its route reaches the order's city before the route
// was ever dispatched.
func (s Status) Complete() (Status, error) {
	if s != Pending && s != InTransit {
		return Unknown, transitionError(s, Completed)
	}
	return Completed, nil
}

// ForceComplete moves any status except Completed to Completed. It is the
// edge a completed route uses to close every order it still carries,
// canceled ones included.
func (s Status) ForceComplete() (Status, error) {
	if s <= Unknown || s == Completed || s > Canceled {
		return Unknown, transitionError(s, Completed)
	}
	return Completed, nil
}

// Cancel moves Pending or InTransit to Canceled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != InTransit {
		return Unknown, transitionError(s, Canceled)
	}
	return Canceled, nil
}

func transitionError(from, to Status) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to move to %s", from, to),
	)
}
