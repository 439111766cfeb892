// Package redis provides a Redis-backed KVStore. Updates are serialized with
// a per-key lock held through redislock.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	goredis "github.com/redis/go-redis/v9"

	"gstinvoice/internal/config"
	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

type kvStore struct {
	client  *goredis.Client
	locker  *redislock.Client
	prefix  string
	lockTTL time.Duration
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return client, nil
}

// NewKVStore creates a KVStore over client. Keys are stored under prefix.
func NewKVStore(client *goredis.Client, prefix string, lockTTL time.Duration) port.KVStore {
	return &kvStore{
		client:  client,
		locker:  redislock.New(client),
		prefix:  prefix,
		lockTTL: lockTTL,
	}
}

func (s *kvStore) key(k string) string {
	return s.prefix + k
}

func (s *kvStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("redisKVStore.Get: %w", err)
	}
	return val, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	if err := s.client.Set(ctx, s.key(key), []byte(value), 0).Err(); err != nil {
		return fmt.Errorf("redisKVStore.Set: %w", err)
	}
	return nil
}

func (s *kvStore) Update(ctx context.Context, key string, fn port.UpdateFunc) (json.RawMessage, error) {
	lock, err := s.locker.Obtain(ctx, s.key(key)+":lock", s.lockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(50*time.Millisecond), 40),
	})
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, domain.ErrStoreBusy
		}
		return nil, fmt.Errorf("redisKVStore.Update lock: %w", err)
	}
	defer func() { _ = lock.Release(context.Background()) }()

	current, err := s.Get(ctx, key)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	if err := s.Set(ctx, key, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *kvStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *kvStore) Close() error {
	return s.client.Close()
}
