package route

import (
	"fmt"
	"slices"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a route.
//
// State transitions:
//
//	Pending ──> InTransit ──> Completed
//	   │            │
//	   └──> Canceled <┘
//
// Completed and Canceled are terminal. A route also becomes Completed when
// stop progression reaches its last stop, whatever its previous status.
type Status int

const (
	Unknown Status = iota
	Pending
	InTransit
	Completed
	Canceled
)

// allowedTransitions is the route state diagram as code.
var allowedTransitions = map[Status][]Status{
	Pending:   {InTransit, Canceled},
	InTransit: {Completed, Canceled},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		InTransit: "in_transit",
		Completed: "completed",
		Canceled:  "canceled",
	}
}

// ParseStatus converts "pending", "in_transit", "completed" or "canceled".
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid route status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the route accepts no more writes.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// CanTransitionTo reports whether the diagram has an edge from s to next.
// Same-state writes are not transitions.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(allowedTransitions[s], next)
}
