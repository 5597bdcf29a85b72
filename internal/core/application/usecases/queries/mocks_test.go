package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/transporter"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
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
	return m.Called(ctx, r).Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRouteRepository) ListIDsByStatus(ctx context.Context, statuses ...route.Status) ([]kernel.UUID, error) {
	args := m.Called(ctx, statuses)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockTransporterRepository struct{ mock.Mock }

func (m *MockTransporterRepository) Add(ctx context.Context, t *transporter.Transporter) error {
	return m.Called(ctx, t).Error(0)
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
	return m.Called(ctx, changes).Error(0)
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
	return m.Called(ctx, orderID, history).Error(0)
}

func (m *MockHistoryCache) Invalidate(ctx context.Context, orderIDs ...kernel.UUID) error {
	return m.Called(ctx, orderIDs).Error(0)
}

func mustCity(t *testing.T, name string) kernel.City {
	t.Helper()
	city, err := kernel.NewCity(name)
	require.NoError(t, err)
	return city
}

func mustOrder(t *testing.T, city string, weight float64) *order.Order {
	t.Helper()
	dims, err := kernel.NewDimensions(weight, 10, 5, 4)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), dims, "books", mustCity(t, city), "1 Main St")
	require.NoError(t, err)
	return o
}

func mustRoute(t *testing.T, destination string, stops ...string) *route.Route {
	t.Helper()
	routeStops := make([]route.Stop, 0, len(stops))
	for i, name := range stops {
		s, err := route.NewStop(i+1, mustCity(t, name))
		require.NoError(t, err)
		routeStops = append(routeStops, s)
	}
	r, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), mustCity(t, "New York"), mustCity(t, destination), routeStops)
	require.NoError(t, err)
	return r
}

func mustChange(t *testing.T, orderID kernel.UUID, status order.Status, comment string, at time.Time) order.StatusChange {
	t.Helper()
	c, err := order.NewStatusChange(orderID, status, comment, at)
	require.NoError(t, err)
	return c
}
