package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates
// together with their stops.
type RouteRepository interface {
	// Add persists a new route with all of its stops.
	Add(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route with stops ordered by position.
	// Returns errs.ObjectNotFoundError when no such route exists.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// Update writes the status and current stop of a route if its stored
	// version still equals aggregate.Version(), then bumps the version.
	// Returns errs.VersionIsInvalidError when another writer got there first.
	Update(ctx context.Context, aggregate *route.Route) error

	// ListIDsByStatus returns identifiers of routes in any of the statuses,
	// oldest first.
	ListIDsByStatus(ctx context.Context, statuses ...route.Status) ([]kernel.UUID, error)
}
