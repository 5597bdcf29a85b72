package commands_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/transporter"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) LockByRoute(
	ctx context.Context,
	routeID kernel.UUID,
	statuses ...order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, routeID, statuses)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) ListIDsByStatus(ctx context.Context, statuses ...route.Status) ([]kernel.UUID, error) {
	args := m.Called(ctx, statuses)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockTransporterRepository struct{ mock.Mock }

func (m *MockTransporterRepository) Add(ctx context.Context, t *transporter.Transporter) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransporterRepository) Get(ctx context.Context, userID kernel.UUID) (*transporter.Transporter, error) {
	args := m.Called(ctx, userID)
	t, _ := args.Get(0).(*transporter.Transporter)
	return t, args.Error(1)
}

func (m *MockTransporterRepository) DecrementCapacityForOrder(
	ctx context.Context,
	routeID, orderID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, routeID, orderID)
	return args.Bool(0), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, changes ...order.StatusChange) error {
	args := m.Called(ctx, changes)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, error) {
	args := m.Called(ctx, orderID)
	history, _ := args.Get(0).([]order.StatusChange)
	return history, args.Error(1)
}

type MockHistoryCache struct{ mock.Mock }

func (m *MockHistoryCache) Get(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, bool, error) {
	args := m.Called(ctx, orderID)
	history, _ := args.Get(0).([]order.StatusChange)
	return history, args.Bool(1), args.Error(2)
}

func (m *MockHistoryCache) Set(ctx context.Context, orderID kernel.UUID, history []order.StatusChange) error {
	args := m.Called(ctx, orderID, history)
	return args.Error(0)
}

func (m *MockHistoryCache) Invalidate(ctx context.Context, orderIDs ...kernel.UUID) error {
	args := m.Called(ctx, orderIDs)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

func (m *MockUoW) TransporterRepository() ports.TransporterRepository {
	args := m.Called()
	return args.Get(0).(ports.TransporterRepository)
}

func (m *MockUoW) OrderStatusHistoryRepository() ports.OrderStatusHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderStatusHistoryRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockTransporterUoWFactory struct{ mock.Mock }

func (m *MockTransporterUoWFactory) Create() commands.TransporterUoW {
	args := m.Called()
	return args.Get(0).(commands.TransporterUoW)
}

func newCity(t *testing.T, name string) kernel.City {
	t.Helper()
	city, err := kernel.NewCity(name)
	require.NoError(t, err)
	return city
}

// newOrder builds an order of weight 10 and volume 200 for city, optionally
// attached to routeID and moved to status.
func newOrder(t *testing.T, city string, routeID *kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	dims, err := kernel.NewDimensions(10, 10, 5, 4)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), dims, "books", newCity(t, city), "1 Main St")
	require.NoError(t, err)

	if routeID != nil {
		require.NoError(t, o.AttachRoute(*routeID))
	}
	switch status { //nolint:exhaustive // Pending needs no setup
	case order.InTransit:
		require.NoError(t, o.StartTransit())
	case order.Completed:
		require.NoError(t, o.Complete(o.CreatedAt()))
	case order.Canceled:
		require.NoError(t, o.Cancel())
	}
	return o
}

func newRoute(t *testing.T, status route.Status, destination string, stops ...string) *route.Route {
	t.Helper()
	routeStops := make([]route.Stop, 0, len(stops))
	for i, name := range stops {
		s, err := route.NewStop(i+1, newCity(t, name))
		require.NoError(t, err)
		routeStops = append(routeStops, s)
	}
	r, err := route.RestoreRoute(kernel.NewUUID(), kernel.NewUUID(), newCity(t, "New York"), newCity(t, destination),
		routeStops, 0, status, 3, time.Now())
	require.NoError(t, err)
	return r
}
