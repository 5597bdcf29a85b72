package redis_test

import (
	"context"
	"testing"
	"time"

	redisadapter "logistics/internal/adapters/out/redis"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type HistoryCacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *goredis.Client
	cache     *redisadapter.HistoryCache
}

func (suite *HistoryCacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	addr, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redisadapter.NewClient(addr, "", 0)
	suite.Require().NoError(suite.client.Ping(ctx).Err())
}

func (suite *HistoryCacheIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(context.Background()).Err())
	suite.cache = redisadapter.NewHistoryCache(suite.client, time.Minute)
}

func (suite *HistoryCacheIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *HistoryCacheIntegrationTestSuite) TestGet_Missing_ReportsMiss() {
	history, ok, err := suite.cache.Get(context.Background(), kernel.NewUUID())

	suite.Require().NoError(err)
	suite.False(ok)
	suite.Nil(history)
}

func (suite *HistoryCacheIntegrationTestSuite) TestSetThenGet_RoundTripsHistory() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	history := []order.StatusChange{
		suite.change(orderID, order.Pending, "order created", at),
		suite.change(orderID, order.InTransit, "", at.Add(time.Hour)),
	}

	suite.Require().NoError(suite.cache.Set(ctx, orderID, history))
	cached, ok, err := suite.cache.Get(ctx, orderID)

	suite.Require().NoError(err)
	suite.True(ok)
	suite.Require().Len(cached, 2)
	suite.Equal(order.Pending, cached[0].Status())
	suite.Equal("order created", cached[0].Comment())
	suite.True(at.Equal(cached[0].ChangedAt()))
	suite.Equal(order.InTransit, cached[1].Status())
	suite.Empty(cached[1].Comment())
	suite.True(orderID.IsEqual(cached[1].OrderID()))
}

func (suite *HistoryCacheIntegrationTestSuite) TestSet_EmptyHistory_IsCachedAsHit() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.cache.Set(ctx, orderID, nil))
	cached, ok, err := suite.cache.Get(ctx, orderID)

	suite.Require().NoError(err)
	suite.True(ok)
	suite.Empty(cached)
}

func (suite *HistoryCacheIntegrationTestSuite) TestSet_AppliesTTL() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.cache.Set(ctx, orderID, nil))

	ttl, err := suite.client.TTL(ctx, "order_status:"+orderID.String()).Result()
	suite.Require().NoError(err)
	suite.Greater(ttl, time.Duration(0))
	suite.LessOrEqual(ttl, time.Minute)
}

func (suite *HistoryCacheIntegrationTestSuite) TestInvalidate_DeletesOnlyGivenOrders() {
	ctx := context.Background()
	first := kernel.NewUUID()
	second := kernel.NewUUID()
	kept := kernel.NewUUID()
	for _, id := range []kernel.UUID{first, second, kept} {
		suite.Require().NoError(suite.cache.Set(ctx, id, nil))
	}

	suite.Require().NoError(suite.cache.Invalidate(ctx, first, second, kernel.NewUUID()))

	for _, id := range []kernel.UUID{first, second} {
		_, ok, err := suite.cache.Get(ctx, id)
		suite.Require().NoError(err)
		suite.False(ok)
	}
	_, ok, err := suite.cache.Get(ctx, kept)
	suite.Require().NoError(err)
	suite.True(ok)
}

func (suite *HistoryCacheIntegrationTestSuite) TestInvalidate_NoIDs_IsNoop() {
	suite.Require().NoError(suite.cache.Invalidate(context.Background()))
}

func (suite *HistoryCacheIntegrationTestSuite) TestGet_CorruptEntry_ReturnsError() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	suite.Require().NoError(suite.client.Set(ctx, "order_status:"+orderID.String(), "not json", time.Minute).Err())

	_, ok, err := suite.cache.Get(ctx, orderID)

	suite.Require().Error(err)
	suite.False(ok)
}

func (suite *HistoryCacheIntegrationTestSuite) TestGet_UnreachableServer_ReturnsError() {
	client := redisadapter.NewClient("127.0.0.1:1", "", 0)
	defer client.Close()
	cache := redisadapter.NewHistoryCache(client, time.Minute)

	_, ok, err := cache.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.False(ok)
}

func (suite *HistoryCacheIntegrationTestSuite) change(
	orderID kernel.UUID,
	status order.Status,
	comment string,
	at time.Time,
) order.StatusChange {
	c, err := order.NewStatusChange(orderID, status, comment, at)
	suite.Require().NoError(err)
	return c
}

func TestHistoryCacheIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryCacheIntegrationTestSuite))
}
