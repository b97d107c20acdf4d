// Package cache содержит реализацию кэширования списков заметок с использованием Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"briefnote/internal/notes/config"
	"briefnote/internal/notes/domain/entities"
	cachePorts "briefnote/internal/notes/ports/cache"
	"briefnote/pkg/db/redis"
	"briefnote/pkg/logger"
)

// Константы для логирования.
const (
	ErrorFailedToGet        = "failed to get listing from redis"
	ErrorFailedToSet        = "failed to set listing in redis"
	ErrorFailedToInvalidate = "failed to invalidate listing in redis"
)

const listingKeyPrefix = "notes:listing:"

// RedisListingCache реализует интерфейс cache.ListingCache поверх Redis.
type RedisListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisListingCache создает новый кэш списков заметок.
func NewRedisListingCache(cfg *config.RedisConfig) (cachePorts.ListingCache, error) {
	client, err := redis.NewClient(&redis.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis listing cache: %w", err)
	}

	return &RedisListingCache{
		client: client,
		ttl:    cfg.ListingTTL,
	}, nil
}

// GetListing возвращает закэшированный список заметок владельца.
// Промах кэша возвращается как (nil, nil).
func (c *RedisListingCache) GetListing(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("cache", "listing"))

	payload, err := c.client.Get(ctx, listingKey(ownerID))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	var notes []*entities.Note
	if err := json.Unmarshal([]byte(payload), &notes); err != nil {
		log.Error(ctx, "failed to decode cached listing", zap.Error(err))
		return nil, fmt.Errorf("failed to decode cached listing: %w", err)
	}

	return notes, nil
}

// SetListing сохраняет список заметок владельца с настроенным TTL.
func (c *RedisListingCache) SetListing(ctx context.Context, ownerID string, notes []*entities.Note) error {
	log := logger.Log(ctx).With(zap.String("cache", "listing"))

	payload, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to encode listing: %w", err)
	}

	if err := c.client.Set(ctx, listingKey(ownerID), payload, c.ttl); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// InvalidateListing сбрасывает закэшированный список владельца.
func (c *RedisListingCache) InvalidateListing(ctx context.Context, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("cache", "listing"))

	if err := c.client.Delete(ctx, listingKey(ownerID)); err != nil {
		log.Error(ctx, ErrorFailedToInvalidate, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToInvalidate, err)
	}

	return nil
}

// Close закрывает соединение с Redis.
func (c *RedisListingCache) Close() error {
	return c.client.Close()
}

func listingKey(ownerID string) string {
	return listingKeyPrefix + ownerID
}
