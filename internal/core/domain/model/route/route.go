package route

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route was not created through
	// NewRoute or RestoreRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

	// ErrTransitionNotAllowed is returned for status writes the state diagram
	// has no edge for, including any write on a terminal route.
	ErrTransitionNotAllowed = errs.NewConflictError("TRANSITION_NOT_ALLOWED", "route status transition is not allowed")

	// ErrRouteIsTerminal is returned when advancing a completed or canceled route.
	ErrRouteIsTerminal = errs.NewConflictError("ROUTE_IS_TERMINAL", "route is completed or canceled")
)

// Route is a transporter's journey from an origin to a destination through an
// ordered list of stops. It is the aggregate root for stops and for the
// progression pointer.
//
// Route follows these invariants:
//   - Stops are numbered 1..N without gaps, in travel order
//   - The current stop pointer stays within 0..N (0 means still at origin)
//   - Completed and Canceled routes accept no status or pointer writes
//   - Version grows by one with every persisted write and guards concurrent updates
type Route struct {
	id            kernel.UUID
	transporterID kernel.UUID
	origin        kernel.City
	destination   kernel.City
	stops         []Stop

	currentStop int
	status      Status
	version     int
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// Arrival describes the outcome of one Advance call.
type Arrival struct {
	// Position is the stored stop pointer after the move; 0 for a route
	// without stops.
	Position int
	// Stop is the stop at Position; nil when the route has no such stop.
	Stop *Stop
	// ReachedEnd is true when the route has no further stops and was completed.
	ReachedEnd bool
}

// NewRoute creates a Pending route at its origin.
//
// Parameters:
//   - id: Unique identifier for the route
//   - transporterID: User identifier of the transporter driving the route
//   - origin, destination: Start and end cities
//   - stops: Intermediate stops, numbered 1..N in any order
//
// Returns:
//   - *Route: The created route with stops sorted by position
//   - error: All validation failures joined together
//
// Example:
//
//	boston, _ := kernel.NewCity("Boston")
//	stop, _ := route.NewStop(1, boston)
//	r, err := route.NewRoute(kernel.NewUUID(), transporterID, newYork, portland, []route.Stop{stop})
func NewRoute(
	id kernel.UUID,
	transporterID kernel.UUID,
	origin kernel.City,
	destination kernel.City,
	stops []Stop,
) (*Route, error) {
	return RestoreRoute(id, transporterID, origin, destination, stops, 0, Pending, 0, time.Now().UTC())
}

// RestoreRoute rebuilds a route from persisted state.
func RestoreRoute(
	id kernel.UUID,
	transporterID kernel.UUID,
	origin kernel.City,
	destination kernel.City,
	stops []Stop,
	currentStop int,
	status Status,
	version int,
	createdAt time.Time,
) (*Route, error) {
	r := &Route{
		version:   version,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setTransporterID(transporterID),
		r.setOrigin(origin),
		r.setDestination(destination),
		r.setStops(stops),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if currentStop < 0 || currentStop > len(r.stops) {
		return nil, errs.NewValueIsOutOfRangeError("currentStop", currentStop, 0, len(r.stops))
	}
	if version < 0 {
		return nil, errs.NewValueIsOutOfRangeError("version", version, 0, "unbounded")
	}

	r.currentStop = currentStop
	r.status = status
	return r, nil
}

// Validate ensures the Route instance was created through a constructor.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r *Route) ID() kernel.UUID {
	return r.id
}

// TransporterID returns the user identifier of the route's transporter.
func (r *Route) TransporterID() kernel.UUID {
	return r.transporterID
}

func (r *Route) Origin() kernel.City {
	return r.origin
}

func (r *Route) Destination() kernel.City {
	return r.destination
}

// Stops returns a copy of the stops ordered by position.
func (r *Route) Stops() []Stop {
	return slices.Clone(r.stops)
}

func (r *Route) StopCount() int {
	return len(r.stops)
}

// StopAt returns the stop at a 1-based position.
func (r *Route) StopAt(position int) (Stop, bool) {
	if position < 1 || position > len(r.stops) {
		return Stop{}, false
	}
	return r.stops[position-1], true
}

// CurrentStop returns the position of the last reached stop, 0 at origin.
func (r *Route) CurrentStop() int {
	return r.currentStop
}

func (r *Route) Status() Status {
	return r.status
}

// Version is the optimistic concurrency counter as read from storage.
func (r *Route) Version() int {
	return r.version
}

func (r *Route) CreatedAt() time.Time {
	return r.createdAt
}

// Serves reports whether a parcel for city can be delivered on this route:
// the city is the final destination or one of the stops.
func (r *Route) Serves(city kernel.City) bool {
	if r.destination.IsEqual(city) {
		return true
	}
	return slices.ContainsFunc(r.stops, func(s Stop) bool {
		return s.city.IsEqual(city)
	})
}

// ChangeStatus moves the route along its state diagram.
//
// Returns:
//   - nil on success
//   - error wrapping ErrTransitionNotAllowed when the diagram has no such edge
//
// Example:
//
//	if err := r.ChangeStatus(route.InTransit); errors.Is(err, route.ErrTransitionNotAllowed) {
//	    // route already left pending
//	}
func (r *Route) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !r.status.CanTransitionTo(next) {
		return errs.NewConflictErrorWithCause(
			ErrTransitionNotAllowed.Code,
			ErrTransitionNotAllowed.Message,
			fmt.Errorf("%s -> %s", r.status, next),
		)
	}

	r.status = next
	return nil
}

// Advance moves the pointer to the next stop. When no stop is left after the
// move the route becomes Completed; a route without stops completes on the
// first call and keeps its pointer at 0. The returned Position is always the
// stored pointer. Terminal routes are rejected with ErrRouteIsTerminal.
func (r *Route) Advance() (Arrival, error) {
	if r.status.IsTerminal() {
		return Arrival{}, ErrRouteIsTerminal
	}

	next := r.currentStop + 1
	var arrival Arrival
	if stop, ok := r.StopAt(next); ok {
		arrival.Stop = &stop
		r.currentStop = next
	}
	arrival.Position = r.currentStop

	if next >= len(r.stops) {
		arrival.ReachedEnd = true
		r.status = Completed
	}

	return arrival, nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setTransporterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("transporterID", err)
	}
	r.transporterID = id
	return nil
}

func (r *Route) setOrigin(city kernel.City) error {
	if err := city.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin", err)
	}
	r.origin = city
	return nil
}

func (r *Route) setDestination(city kernel.City) error {
	if err := city.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination", err)
	}
	r.destination = city
	return nil
}

func (r *Route) setStops(stops []Stop) error {
	sorted := slices.Clone(stops)
	slices.SortFunc(sorted, func(a, b Stop) int {
		return a.position - b.position
	})

	for i, s := range sorted {
		if err := s.Validate(); err != nil {
			return err
		}
		if s.position != i+1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"stops",
				fmt.Errorf("stop positions must run 1..%d without gaps, got %d at index %d", len(sorted), s.position, i),
			)
		}
	}

	r.stops = sorted
	return nil
}
