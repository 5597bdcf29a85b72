package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transporter"
)

// TransporterRepository defines the persistence contract for transporter
// profiles and their remaining capacity.
type TransporterRepository interface {
	// Add persists a new transporter profile.
	Add(ctx context.Context, aggregate *transporter.Transporter) error

	// Get retrieves a transporter by its user identifier.
	// Returns errs.ObjectNotFoundError when the user has no transporter record.
	Get(ctx context.Context, userID kernel.UUID) (*transporter.Transporter, error)

	// DecrementCapacityForOrder subtracts the order's weight and volume from
	// the capacity of the route's transporter in one conditional statement.
	// It returns false, without changing anything, when the order or route
	// does not exist, the route has no transporter record or either capacity
	// would become negative.
	DecrementCapacityForOrder(ctx context.Context, routeID, orderID kernel.UUID) (bool, error)
}
