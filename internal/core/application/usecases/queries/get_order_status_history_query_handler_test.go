package queries_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderStatusHistoryQueryHandler_Handle(t *testing.T) {
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	orderID := kernel.NewUUID()
	history := []order.StatusChange{
		mustChange(t, orderID, order.Pending, "order created", created),
		mustChange(t, orderID, order.InTransit, "route departed", created.Add(time.Hour)),
	}

	t.Run("should serve cache hit without touching the store", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockHistoryRepository)
		cache := new(MockHistoryCache)
		cache.On("Get", ctx, orderID).Return(history, true, nil).Once()

		h := queries.NewGetOrderStatusHistoryQueryHandler(repo, cache, slog.Default())
		query, err := queries.NewGetOrderStatusHistoryQuery(orderID)
		require.NoError(t, err)
		result, err := h.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "pending", result[0].Status)
		assert.Equal(t, "in_transit", result[1].Status)
		assert.Equal(t, "route departed", result[1].Comment)
		assert.Equal(t, created.Add(time.Hour), result[1].Timestamp)
		repo.AssertNotCalled(t, "ListByOrder")
		cache.AssertExpectations(t)
	})

	t.Run("should load and populate on miss", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockHistoryRepository)
		cache := new(MockHistoryCache)
		cache.On("Get", ctx, orderID).Return(nil, false, nil).Once()
		repo.On("ListByOrder", ctx, orderID).Return(history, nil).Once()
		cache.On("Set", ctx, orderID, history).Return(nil).Once()

		h := queries.NewGetOrderStatusHistoryQueryHandler(repo, cache, slog.Default())
		query, err := queries.NewGetOrderStatusHistoryQuery(orderID)
		require.NoError(t, err)
		result, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Len(t, result, 2)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("should fall through to the store when the cache fails", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockHistoryRepository)
		cache := new(MockHistoryCache)
		cache.On("Get", ctx, orderID).Return(nil, false, errors.New("redis down")).Once()
		repo.On("ListByOrder", ctx, orderID).Return(history, nil).Once()
		cache.On("Set", ctx, orderID, history).Return(errors.New("redis down")).Once()

		h := queries.NewGetOrderStatusHistoryQueryHandler(repo, cache, slog.Default())
		query, err := queries.NewGetOrderStatusHistoryQuery(orderID)
		require.NoError(t, err)
		result, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("should return empty list for unknown order", func(t *testing.T) {
		ctx := t.Context()
		unknown := kernel.NewUUID()
		repo := new(MockHistoryRepository)
		cache := new(MockHistoryCache)
		cache.On("Get", ctx, unknown).Return(nil, false, nil).Once()
		repo.On("ListByOrder", ctx, unknown).Return([]order.StatusChange{}, nil).Once()
		cache.On("Set", ctx, unknown, []order.StatusChange{}).Return(nil).Once()

		h := queries.NewGetOrderStatusHistoryQueryHandler(repo, cache, slog.Default())
		query, err := queries.NewGetOrderStatusHistoryQuery(unknown)
		require.NoError(t, err)
		result, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("should return store errors", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockHistoryRepository)
		cache := new(MockHistoryCache)
		expectedError := errors.New("connection reset")
		cache.On("Get", ctx, orderID).Return(nil, false, nil).Once()
		repo.On("ListByOrder", ctx, orderID).Return(nil, expectedError).Once()

		h := queries.NewGetOrderStatusHistoryQueryHandler(repo, cache, slog.Default())
		query, err := queries.NewGetOrderStatusHistoryQuery(orderID)
		require.NoError(t, err)
		_, err = h.Handle(ctx, query)

		require.ErrorIs(t, err, expectedError)
		cache.AssertNotCalled(t, "Set")
	})
}

func TestNewGetOrderStatusHistoryQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderStatusHistoryQuery(kernel.UUID{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
