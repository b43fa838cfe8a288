package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/leadscope/leadscope-go/pkg/fingerprint"
)

// QueryCacheTTL bounds how long a computed view is reused. The dataset is
// static, so the TTL exists only to bound memory on the Redis side.
const QueryCacheTTL = 5 * time.Minute

// CacheService provides a Redis cache-aside layer for computed lead views.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops) — the server never depends on Redis being up.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetQuery retrieves a cached query response. Returns nil if not cached or
// caching is disabled.
func (c *CacheService) GetQuery(ctx context.Context, queryKey string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, redisKey(queryKey)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetQuery stores a computed query response.
func (c *CacheService) SetQuery(ctx context.Context, queryKey string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, redisKey(queryKey), b, QueryCacheTTL).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

// redisKey hashes the raw query key so arbitrary search text never appears
// verbatim in Redis.
func redisKey(queryKey string) string {
	return fmt.Sprintf("leads:query:%s", fingerprint.SHA256Hex([]byte(queryKey))[:32])
}
