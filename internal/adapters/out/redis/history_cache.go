// Package redis keeps a short-lived copy of order status histories in Redis.
// Entries are derived data: the database stays the source of truth, every
// entry expires after a TTL and writers delete entries of orders they change.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "order_status:"

var (
	// cacheRequests counts history lookups by result: hit, miss or error.
	cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logistics_history_cache_requests_total",
		Help: "Order status history cache lookups by result",
	}, []string{"result"})

	// cacheInvalidations counts deleted history entries.
	cacheInvalidations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logistics_history_cache_invalidations_total",
		Help: "Order status history cache entries invalidated",
	})
)

// entry is the JSON shape of one cached history row.
type entry struct {
	Status    string    `json:"status"`
	Comment   string    `json:"comment,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}

// HistoryCache implements ports.OrderStatusHistoryCache on a Redis client.
type HistoryCache struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

// NewClient builds the Redis client the cache runs on.
func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewHistoryCache(client goredis.UniversalClient, ttl time.Duration) *HistoryCache {
	return &HistoryCache{client: client, ttl: ttl}
}

// Get returns the cached history of orderID. A missing key is reported as
// (nil, false, nil).
func (c *HistoryCache) Get(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, bool, error) {
	raw, err := c.client.Get(ctx, key(orderID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		cacheRequests.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		cacheRequests.WithLabelValues("error").Inc()
		return nil, false, err
	}

	history, err := decode(orderID, raw)
	if err != nil {
		cacheRequests.WithLabelValues("error").Inc()
		return nil, false, err
	}

	cacheRequests.WithLabelValues("hit").Inc()
	return history, true, nil
}

// Set stores history under the order's key for the configured TTL.
func (c *HistoryCache) Set(ctx context.Context, orderID kernel.UUID, history []order.StatusChange) error {
	entries := make([]entry, 0, len(history))
	for _, h := range history {
		entries = append(entries, entry{
			Status:    h.Status().String(),
			Comment:   h.Comment(),
			ChangedAt: h.ChangedAt(),
		})
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key(orderID), raw, c.ttl).Err()
}

// Invalidate deletes the entries of the given orders in one round trip.
func (c *HistoryCache) Invalidate(ctx context.Context, orderIDs ...kernel.UUID) error {
	if len(orderIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		keys = append(keys, key(id))
	}

	deleted, err := c.client.Del(ctx, keys...).Result()
	if err != nil {
		return err
	}

	cacheInvalidations.Add(float64(deleted))
	return nil
}

func key(orderID kernel.UUID) string {
	return keyPrefix + orderID.String()
}

func decode(orderID kernel.UUID, raw []byte) ([]order.StatusChange, error) {
	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode cached history of %s: %w", orderID.String(), err)
	}

	history := make([]order.StatusChange, 0, len(entries))
	for _, e := range entries {
		status, err := order.ParseStatus(e.Status)
		if err != nil {
			return nil, err
		}
		change, err := order.NewStatusChange(orderID, status, e.Comment, e.ChangedAt)
		if err != nil {
			return nil, err
		}
		history = append(history, change)
	}

	return history, nil
}
