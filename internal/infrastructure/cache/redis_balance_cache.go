package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	appsettlement "github.com/broilerlink/backend/internal/application/settlement"
	"github.com/broilerlink/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const defaultBalanceKeyPrefix = "settlement:balance:"

// RedisBalanceCache implements BalanceCache using Redis. It is suitable for
// distributed deployments where multiple instances need to share the derived
// vendor balances. Entries carry a TTL so a missed invalidation heals itself.
type RedisBalanceCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisBalanceCache creates a balance cache backed by a new Redis client
func NewRedisBalanceCache(cfg *config.RedisConfig) (*RedisBalanceCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisBalanceCache{
		client:    client,
		keyPrefix: defaultBalanceKeyPrefix,
		ttl:       cfg.BalanceTTL,
	}, nil
}

// NewRedisBalanceCacheWithClient creates a cache with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisBalanceCacheWithClient(client *redis.Client, ttl time.Duration) *RedisBalanceCache {
	return &RedisBalanceCache{
		client:    client,
		keyPrefix: defaultBalanceKeyPrefix,
		ttl:       ttl,
	}
}

// Get returns the cached balance for a vendor and whether it was present
func (c *RedisBalanceCache) Get(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, bool, error) {
	val, err := c.client.Get(ctx, c.key(vendorID)).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("failed to read cached balance: %w", err)
	}

	balance, err := decimal.NewFromString(val)
	if err != nil {
		// Unparseable entry is treated as a miss so it gets overwritten
		return decimal.Zero, false, nil
	}
	return balance, true, nil
}

// Set stores a vendor's outstanding balance
func (c *RedisBalanceCache) Set(ctx context.Context, vendorID uuid.UUID, balance decimal.Decimal) error {
	if err := c.client.Set(ctx, c.key(vendorID), balance.String(), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache balance: %w", err)
	}
	return nil
}

// Invalidate drops a vendor's cached balance
func (c *RedisBalanceCache) Invalidate(ctx context.Context, vendorID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(vendorID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached balance: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisBalanceCache) Close() error {
	return c.client.Close()
}

func (c *RedisBalanceCache) key(vendorID uuid.UUID) string {
	return c.keyPrefix + vendorID.String()
}

// Ensure RedisBalanceCache implements BalanceCache
var _ appsettlement.BalanceCache = (*RedisBalanceCache)(nil)
