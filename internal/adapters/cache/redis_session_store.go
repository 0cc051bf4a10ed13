// Package cache holds the Redis-backed session store.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ems-portal/internal/core/session"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ems:session:"

// RedisSessionStore persists session snapshots in Redis with a TTL
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ session.Store = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a store over client. Every write refreshes the TTL.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

// Connect opens a Redis client and pings it
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

func redisKey(clientID, key string) string {
	return keyPrefix + clientID + ":" + key
}

// Get returns the snapshot stored under key, or session.ErrNoValue
func (s *RedisSessionStore) Get(ctx context.Context, clientID, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, redisKey(clientID, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrNoValue
		}
		return nil, err
	}
	return value, nil
}

// Put stores the snapshot under key
func (s *RedisSessionStore) Put(ctx context.Context, clientID, key string, value []byte) error {
	return s.client.Set(ctx, redisKey(clientID, key), value, s.ttl).Err()
}

// Delete removes the snapshot stored under key
func (s *RedisSessionStore) Delete(ctx context.Context, clientID, key string) error {
	return s.client.Del(ctx, redisKey(clientID, key)).Err()
}
