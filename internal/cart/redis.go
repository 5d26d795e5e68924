package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps cart snapshots as JSON values in Redis, for deployments
// that treat the cart as an external cache rather than relational state.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{rdb: rdb}, nil
}

// Close closes the Redis connection
func (r *RedisStore) Close() error {
	return r.rdb.Close()
}

func cartKey(userID int64) string {
	return fmt.Sprintf("cart:%d", userID)
}

// Save stores the cart snapshot for a user
func (r *RedisStore) Save(ctx context.Context, userID int64, c *Cart) error {
	data, err := json.Marshal(c.Items())
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, cartKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

// Load retrieves the cart snapshot for a user, empty cart if none exists
func (r *RedisStore) Load(ctx context.Context, userID int64) (*Cart, error) {
	data, err := r.rdb.Get(ctx, cartKey(userID)).Bytes()
	if err == redis.Nil {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}

	var items map[int64]int
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return FromItems(items), nil
}
