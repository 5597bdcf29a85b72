package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	openStatuses    = []order.Status{order.Pending, order.InTransit}
	closingStatuses = []order.Status{order.Pending, order.InTransit, order.Canceled}
)

func TestNewAdvanceRouteStopCommand(t *testing.T) {
	_, err := commands.NewAdvanceRouteStopCommand(kernel.UUID{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAdvanceRouteStopCommandHandler_Handle_TwoStops(t *testing.T) {
	ctx := t.Context()
	f := newEngineFixture()
	r := newRoute(t, route.InTransit, "Portland", "Boston", "Springfield")
	routeID := r.ID()
	forBoston := newOrder(t, "Boston", &routeID, order.InTransit)
	forSpringfield := newOrder(t, "Springfield", &routeID, order.InTransit)
	forPortland := newOrder(t, "Portland", &routeID, order.Pending)
	cmd, err := commands.NewAdvanceRouteStopCommand(routeID)
	require.NoError(t, err)
	h := commands.NewAdvanceRouteStopCommandHandler(f.factory, f.cache, slog.Default())

	t.Run("first advance completes orders for stop 1", func(t *testing.T) {
		f.routeRepo.On("Get", ctx, routeID).Return(r, nil).Once()
		f.routeRepo.On("Update", ctx, r).Return(nil).Once()
		f.orderRepo.On("LockByRoute", ctx, routeID, openStatuses).
			Return([]*order.Order{forBoston, forSpringfield, forPortland}, nil).Once()
		f.orderRepo.On("Update", ctx, forBoston).Return(nil).Once()
		f.historyRepo.On("Append", ctx, historyFor(map[kernel.UUID]order.Status{
			forBoston.ID(): order.Completed,
		})).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()
		f.cache.On("Invalidate", ctx, orderIDs(forBoston)).Return(nil).Once()

		arrival, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, arrival.Position)
		assert.False(t, arrival.ReachedEnd)
		assert.Equal(t, 1, r.CurrentStop())
		assert.Equal(t, route.InTransit, r.Status())
		assert.Equal(t, order.Completed, forBoston.Status())
		assert.Equal(t, order.InTransit, forSpringfield.Status())
		assert.Equal(t, order.Pending, forPortland.Status())
		f.assertExpectations(t)
	})

	t.Run("second advance completes the route and stragglers", func(t *testing.T) {
		f.routeRepo.On("Get", ctx, routeID).Return(r, nil).Once()
		f.routeRepo.On("Update", ctx, r).Return(nil).Once()
		f.orderRepo.On("LockByRoute", ctx, routeID, closingStatuses).
			Return([]*order.Order{forSpringfield, forPortland}, nil).Once()
		f.orderRepo.On("Update", ctx, forSpringfield).Return(nil).Once()
		f.orderRepo.On("Update", ctx, forPortland).Return(nil).Once()
		f.historyRepo.On("Append", ctx, historyFor(map[kernel.UUID]order.Status{
			forSpringfield.ID(): order.Completed,
			forPortland.ID():    order.Completed,
		})).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()
		f.cache.On("Invalidate", ctx, orderIDs(forSpringfield, forPortland)).Return(nil).Once()

		arrival, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, arrival.Position)
		assert.True(t, arrival.ReachedEnd)
		assert.Equal(t, 2, r.CurrentStop())
		assert.Equal(t, route.Completed, r.Status())
		assert.Equal(t, order.Completed, forSpringfield.Status())
		assert.Equal(t, order.Completed, forPortland.Status())
		f.assertExpectations(t)
	})

	t.Run("advance after completion changes nothing", func(t *testing.T) {
		f.routeRepo.On("Get", ctx, routeID).Return(r, nil).Once()

		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, route.ErrRouteIsTerminal)
		assert.Equal(t, 2, r.CurrentStop())
		f.routeRepo.AssertNumberOfCalls(t, "Update", 2)
		f.uow.AssertNumberOfCalls(t, "Commit", 2)
	})
}

func TestAdvanceRouteStopCommandHandler_Handle_NoStops(t *testing.T) {
	ctx := t.Context()
	f := newEngineFixture()
	r := newRoute(t, route.Pending, "Portland")
	routeID := r.ID()
	pending := newOrder(t, "Portland", &routeID, order.Pending)
	cmd, err := commands.NewAdvanceRouteStopCommand(routeID)
	require.NoError(t, err)

	f.routeRepo.On("Get", ctx, routeID).Return(r, nil).Once()
	f.routeRepo.On("Update", ctx, r).Return(nil).Once()
	f.orderRepo.On("LockByRoute", ctx, routeID, closingStatuses).Return([]*order.Order{pending}, nil).Once()
	f.orderRepo.On("Update", ctx, pending).Return(nil).Once()
	f.historyRepo.On("Append", ctx, mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.cache.On("Invalidate", ctx, orderIDs(pending)).Return(nil).Once()

	h := commands.NewAdvanceRouteStopCommandHandler(f.factory, f.cache, slog.Default())
	arrival, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, arrival.ReachedEnd)
	assert.Nil(t, arrival.Stop)
	assert.Equal(t, 0, arrival.Position)
	assert.Equal(t, 0, r.CurrentStop())
	assert.Equal(t, route.Completed, r.Status())
	assert.Equal(t, order.Completed, pending.Status())
	f.assertExpectations(t)
}

func TestAdvanceRouteStopCommandHandler_Handle_LastStopCompletesCanceledOrders(t *testing.T) {
	ctx := t.Context()
	f := newEngineFixture()
	r := newRoute(t, route.InTransit, "Portland", "Boston")
	routeID := r.ID()
	forBoston := newOrder(t, "Boston", &routeID, order.InTransit)
	canceled := newOrder(t, "Boston", &routeID, order.Canceled)
	cmd, err := commands.NewAdvanceRouteStopCommand(routeID)
	require.NoError(t, err)

	f.routeRepo.On("Get", ctx, routeID).Return(r, nil).Once()
	f.routeRepo.On("Update", ctx, r).Return(nil).Once()
	f.orderRepo.On("LockByRoute", ctx, routeID, closingStatuses).
		Return([]*order.Order{forBoston, canceled}, nil).Once()
	f.orderRepo.On("Update", ctx, forBoston).Return(nil).Once()
	f.orderRepo.On("Update", ctx, canceled).Return(nil).Once()
	f.historyRepo.On("Append", ctx, historyFor(map[kernel.UUID]order.Status{
		forBoston.ID(): order.Completed,
		canceled.ID():  order.Completed,
	})).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.cache.On("Invalidate", ctx, orderIDs(forBoston, canceled)).Return(nil).Once()

	h := commands.NewAdvanceRouteStopCommandHandler(f.factory, f.cache, slog.Default())
	arrival, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, arrival.ReachedEnd)
	assert.Equal(t, route.Completed, r.Status())
	assert.Equal(t, order.Completed, forBoston.Status())
	assert.Equal(t, order.Completed, canceled.Status())
	require.NotNil(t, canceled.DeliveredAt())
	f.assertExpectations(t)
}

func TestAdvanceRouteStopCommandHandler_Handle_AppendErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	f := newEngineFixture()
	r := newRoute(t, route.InTransit, "Portland", "Boston", "Springfield")
	routeID := r.ID()
	forBoston := newOrder(t, "Boston", &routeID, order.InTransit)
	cmd, err := commands.NewAdvanceRouteStopCommand(routeID)
	require.NoError(t, err)
	expectedError := errors.New("insert failed")

	f.routeRepo.On("Get", ctx, routeID).Return(r, nil).Once()
	f.routeRepo.On("Update", ctx, r).Return(nil).Once()
	f.orderRepo.On("LockByRoute", ctx, routeID, openStatuses).Return([]*order.Order{forBoston}, nil).Once()
	f.orderRepo.On("Update", ctx, forBoston).Return(nil).Once()
	f.historyRepo.On("Append", ctx, mock.Anything).Return(expectedError).Once()

	h := commands.NewAdvanceRouteStopCommandHandler(f.factory, f.cache, slog.Default())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, expectedError)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.uow.AssertCalled(t, "Rollback", ctx)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestAdvanceRouteStopCommandHandler_Handle_OrderUpdateErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	f := newEngineFixture()
	r := newRoute(t, route.InTransit, "Portland", "Boston", "Springfield")
	routeID := r.ID()
	forBoston := newOrder(t, "Boston", &routeID, order.InTransit)
	cmd, err := commands.NewAdvanceRouteStopCommand(routeID)
	require.NoError(t, err)
	expectedError := errs.NewVersionIsInvalidErrorWithCause("order")

	f.routeRepo.On("Get", ctx, routeID).Return(r, nil).Once()
	f.routeRepo.On("Update", ctx, r).Return(nil).Once()
	f.orderRepo.On("LockByRoute", ctx, routeID, openStatuses).Return([]*order.Order{forBoston}, nil).Once()
	f.orderRepo.On("Update", ctx, forBoston).Return(expectedError).Once()

	h := commands.NewAdvanceRouteStopCommandHandler(f.factory, f.cache, slog.Default())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	f.historyRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.uow.AssertCalled(t, "Rollback", ctx)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestAdvanceRouteStopCommandHandler_Handle_CacheFailureIsNotFatal(t *testing.T) {
	ctx := t.Context()
	f := newEngineFixture()
	r := newRoute(t, route.InTransit, "Portland", "Boston", "Springfield")
	routeID := r.ID()
	forBoston := newOrder(t, "Boston", &routeID, order.InTransit)
	cmd, err := commands.NewAdvanceRouteStopCommand(routeID)
	require.NoError(t, err)

	f.routeRepo.On("Get", ctx, routeID).Return(r, nil).Once()
	f.routeRepo.On("Update", ctx, r).Return(nil).Once()
	f.orderRepo.On("LockByRoute", ctx, routeID, openStatuses).Return([]*order.Order{forBoston}, nil).Once()
	f.orderRepo.On("Update", ctx, forBoston).Return(nil).Once()
	f.historyRepo.On("Append", ctx, mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.cache.On("Invalidate", ctx, orderIDs(forBoston)).Return(errors.New("redis: connection refused")).Once()

	h := commands.NewAdvanceRouteStopCommandHandler(f.factory, f.cache, slog.Default())
	arrival, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, arrival.Position)
	assert.Equal(t, order.Completed, forBoston.Status())
	f.assertExpectations(t)
}

func TestAdvanceRouteStopCommandHandler_Handle_ConcurrentUpdate(t *testing.T) {
	ctx := t.Context()
	f := newEngineFixture()
	r := newRoute(t, route.InTransit, "Portland", "Boston")
	cmd, err := commands.NewAdvanceRouteStopCommand(r.ID())
	require.NoError(t, err)

	f.routeRepo.On("Get", ctx, r.ID()).Return(r, nil).Once()
	f.routeRepo.On("Update", ctx, r).Return(errs.NewVersionIsInvalidErrorWithCause("route")).Once()

	h := commands.NewAdvanceRouteStopCommandHandler(f.factory, f.cache, slog.Default())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	f.orderRepo.AssertNotCalled(t, "LockByRoute", mock.Anything, mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAdvanceRouteStopCommandHandler_Handle_ValidationError(t *testing.T) {
	f := newEngineFixture()
	h := commands.NewAdvanceRouteStopCommandHandler(f.factory, f.cache, slog.Default())

	_, err := h.Handle(t.Context(), commands.AdvanceRouteStopCommand{})

	require.ErrorIs(t, err, commands.ErrAdvanceRouteStopCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}
