package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/transporter"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCity(t *testing.T, name string) kernel.City {
	t.Helper()
	c, err := kernel.NewCity(name)
	require.NoError(t, err)
	return c
}

func mustOrder(t *testing.T, cityName string, weight, length, width, height float64) *order.Order {
	t.Helper()
	dims, err := kernel.NewDimensions(weight, length, width, height)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), dims, "books", mustCity(t, cityName), "1 Main St")
	require.NoError(t, err)
	return o
}

func mustRoute(t *testing.T, transporterID kernel.UUID, destination string, stops ...string) *route.Route {
	t.Helper()
	routeStops := make([]route.Stop, 0, len(stops))
	for i, name := range stops {
		s, err := route.NewStop(i+1, mustCity(t, name))
		require.NoError(t, err)
		routeStops = append(routeStops, s)
	}
	r, err := route.NewRoute(kernel.NewUUID(), transporterID, mustCity(t, "New York"), mustCity(t, destination), routeStops)
	require.NoError(t, err)
	return r
}

func mustTransporter(t *testing.T, userID kernel.UUID, maxWeight, maxVolume float64) *transporter.Transporter {
	t.Helper()
	tr, err := transporter.NewTransporter(userID, "Bob", "truck", maxWeight, maxVolume)
	require.NoError(t, err)
	return tr
}

func TestRouteCompatibility_CheckAssignment(t *testing.T) {
	rc := services.NewRouteCompatibility()

	t.Run("should accept order without route", func(t *testing.T) {
		o := mustOrder(t, "Boston", 10, 10, 5, 4)

		require.NoError(t, rc.CheckAssignment(o, kernel.NewUUID()))
	})

	t.Run("should reject order already on the route", func(t *testing.T) {
		o := mustOrder(t, "Boston", 10, 10, 5, 4)
		routeID := kernel.NewUUID()
		require.NoError(t, o.AttachRoute(routeID))

		err := rc.CheckAssignment(o, routeID)

		require.ErrorIs(t, err, services.ErrOrderAlreadyHasRoute)
	})

	t.Run("should accept order attached to another route", func(t *testing.T) {
		o := mustOrder(t, "Boston", 10, 10, 5, 4)
		require.NoError(t, o.AttachRoute(kernel.NewUUID()))

		require.NoError(t, rc.CheckAssignment(o, kernel.NewUUID()))
	})
}

func TestRouteCompatibility_CheckRoute(t *testing.T) {
	rc := services.NewRouteCompatibility()
	userID := kernel.NewUUID()

	t.Run("should accept order for a stop city within capacity", func(t *testing.T) {
		o := mustOrder(t, "Boston", 10, 10, 5, 4)
		r := mustRoute(t, userID, "Portland", "Boston")

		require.NoError(t, rc.CheckRoute(o, r, mustTransporter(t, userID, 50, 5000)))
	})

	t.Run("should accept order for the destination city", func(t *testing.T) {
		o := mustOrder(t, "portland", 10, 10, 5, 4)
		r := mustRoute(t, userID, "Portland")

		require.NoError(t, rc.CheckRoute(o, r, mustTransporter(t, userID, 50, 5000)))
	})

	t.Run("should reject city the route does not serve", func(t *testing.T) {
		o := mustOrder(t, "Chicago", 10, 10, 5, 4)
		r := mustRoute(t, userID, "Portland", "Boston")

		err := rc.CheckRoute(o, r, mustTransporter(t, userID, 50, 5000))

		require.ErrorIs(t, err, services.ErrInvalidDeliveryCity)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should check city before capacity", func(t *testing.T) {
		o := mustOrder(t, "Chicago", 100, 10, 5, 4)
		r := mustRoute(t, userID, "Portland")

		err := rc.CheckRoute(o, r, mustTransporter(t, userID, 1, 1))

		require.ErrorIs(t, err, services.ErrInvalidDeliveryCity)
	})

	t.Run("should reject overweight order", func(t *testing.T) {
		o := mustOrder(t, "Boston", 51, 1, 1, 1)
		r := mustRoute(t, userID, "Boston")

		err := rc.CheckRoute(o, r, mustTransporter(t, userID, 50, 5000))

		require.ErrorIs(t, err, services.ErrInsufficientCapacity)
	})

	t.Run("should reject oversized order", func(t *testing.T) {
		o := mustOrder(t, "Boston", 1, 20, 20, 20)
		r := mustRoute(t, userID, "Boston")

		err := rc.CheckRoute(o, r, mustTransporter(t, userID, 50, 5000))

		require.ErrorIs(t, err, services.ErrInsufficientCapacity)
		assert.Contains(t, err.Error(), "volume 8000.000")
	})

	t.Run("should treat missing transporter as zero capacity", func(t *testing.T) {
		o := mustOrder(t, "Boston", 1, 1, 1, 1)
		r := mustRoute(t, userID, "Boston")

		err := rc.CheckRoute(o, r, nil)

		require.ErrorIs(t, err, services.ErrInsufficientCapacity)
		assert.Contains(t, err.Error(), "no transporter record")
	})
}
