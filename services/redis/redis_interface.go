package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client instance. Addr is either a plain
// host:port or a redis:// URL as handed out by managed Redis providers
func NewRedisClient(Addr string, DB int) (*RedisClient, error) {
	var client *redis.Client
	if strings.HasPrefix(Addr, "redis://") || strings.HasPrefix(Addr, "rediss://") {
		logrus.Info("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			return nil, fmt.Errorf("error parsing Redis URL: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{client: client}, nil
}

// GetJSON loads the value stored at key into dest.
// Returns false without error when the key does not exist
func (rc *RedisClient) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := rc.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error getting key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("error unmarshaling key %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores value as JSON under key with the given TTL
func (rc *RedisClient) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshaling key %s: %w", key, err)
	}
	return rc.client.Set(ctx, key, data, ttl).Err()
}

// DeletePrefix removes every key starting with prefix
func (rc *RedisClient) DeletePrefix(ctx context.Context, prefix string) error {
	iter := rc.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("error scanning prefix %s: %w", prefix, err)
	}
	return rc.CleanupKeys(ctx, keys)
}

// unlockScript deletes the lock only while it still holds the caller's token
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// TryLock sets key to a fresh token if it does not exist yet.
// Returns ok false when someone else holds the lock
func (rc *RedisClient) TryLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := rc.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("error locking %s: %w", key, err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Unlock releases key if it is still held with token. A lock that expired
// and was taken by someone else is left alone
func (rc *RedisClient) Unlock(ctx context.Context, key, token string) error {
	if err := unlockScript.Run(ctx, rc.client, []string{key}, token).Err(); err != nil {
		return fmt.Errorf("error unlocking %s: %w", key, err)
	}
	return nil
}

// Ping checks the connection
func (rc *RedisClient) Ping(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}
