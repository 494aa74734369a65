package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs per data class
const (
	TTLBook        = 5 * time.Minute  // book detail (price/stock change occasionally)
	TTLBookList    = 1 * time.Minute  // book listings
	TTLActiveEvent = 30 * time.Second // current promotional event (window-sensitive)
	TTLSession     = 30 * time.Minute // session
	TTLDefault     = 5 * time.Minute  // fallback
)

// Cache key prefixes
const (
	PrefixBook        = "book:"
	PrefixBookList    = "books:"
	PrefixActiveEvent = "event:active"
	PrefixSession     = "session:"
	PrefixMember      = "member:"
)

// Service is the Redis cache service interface
type Service interface {
	// Generic operations
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Book cache
	GetBook(ctx context.Context, bookID int64) ([]byte, error)
	SetBook(ctx context.Context, bookID int64, data interface{}) error
	InvalidateBook(ctx context.Context, bookID int64) error
	InvalidateBookLists(ctx context.Context) error

	// Active event cache
	GetActiveEvent(ctx context.Context) ([]byte, error)
	SetActiveEvent(ctx context.Context, data interface{}) error
	InvalidateActiveEvent(ctx context.Context) error

	// Utilities
	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache is the Redis-backed implementation
type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable reports whether a Redis connection is configured
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping tests the Redis connection
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get reads a cached value into dest
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set stores a value in the cache
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // no Redis, caching is best-effort
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes keys from the cache
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Exists checks whether a key is cached
func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	n, err := c.client.Exists(ctx, key).Result()
	return n > 0, err
}

func (c *redisCache) bookKey(bookID int64) string {
	return fmt.Sprintf("%s%d", PrefixBook, bookID)
}

func (c *redisCache) GetBook(ctx context.Context, bookID int64) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, c.bookKey(bookID)).Bytes()
}

func (c *redisCache) SetBook(ctx context.Context, bookID int64, data interface{}) error {
	if c.client == nil {
		return nil
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.bookKey(bookID), jsonData, TTLBook).Err()
}

func (c *redisCache) InvalidateBook(ctx context.Context, bookID int64) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.bookKey(bookID)).Err()
}

func (c *redisCache) InvalidateBookLists(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.deleteByPattern(ctx, PrefixBookList+"*")
}

func (c *redisCache) GetActiveEvent(ctx context.Context) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, PrefixActiveEvent).Bytes()
}

func (c *redisCache) SetActiveEvent(ctx context.Context, data interface{}) error {
	if c.client == nil {
		return nil
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, PrefixActiveEvent, jsonData, TTLActiveEvent).Err()
}

func (c *redisCache) InvalidateActiveEvent(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, PrefixActiveEvent).Err()
}

// deleteByPattern removes all keys matching a pattern via SCAN (avoids blocking KEYS)
func (c *redisCache) deleteByPattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
