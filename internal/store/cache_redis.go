package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/models"
	goredis "github.com/redis/go-redis/v9"
)

// CacheKeyPrefix namespaces every key written by the profile cache.
const CacheKeyPrefix = "profile-editor"

const (
	profileKeySuffix   = "profile"
	platformsKeySuffix = "platforms"
)

// redisKV is the subset of [goredis.Cmdable] used by the cache.
type redisKV interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// redisProfileCache stores JSON encoded profiles and platform lists in Redis.
type redisProfileCache struct {
	db  redisKV
	ttl time.Duration
}

// NewRedisClient connects to Redis and checks the connection.
func NewRedisClient(ctx context.Context, cfg config.Cache, log *logger.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Str("address", cfg.RedisAddress).Msg("cannot ping redis")
		client.Close()
		return nil, fmt.Errorf("cannot connect to redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Str("address", cfg.RedisAddress).Msg("connected to redis")

	return client, nil
}

func NewRedisProfileCache(client redisKV, ttl time.Duration) ProfileCache {
	return &redisProfileCache{db: client, ttl: ttl}
}

func (c *redisProfileCache) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	var profile models.Profile
	err := c.get(ctx, cacheKey(userID, profileKeySuffix), &profile)
	return profile, err
}

func (c *redisProfileCache) SetProfile(ctx context.Context, userID string, profile models.Profile) error {
	return c.set(ctx, cacheKey(userID, profileKeySuffix), profile)
}

func (c *redisProfileCache) GetPlatforms(ctx context.Context, userID string) ([]models.Platform, error) {
	platforms := make([]models.Platform, 0)
	if err := c.get(ctx, cacheKey(userID, platformsKeySuffix), &platforms); err != nil {
		return nil, err
	}
	return platforms, nil
}

func (c *redisProfileCache) SetPlatforms(ctx context.Context, userID string, platforms []models.Platform) error {
	if platforms == nil {
		platforms = []models.Platform{}
	}
	return c.set(ctx, cacheKey(userID, platformsKeySuffix), platforms)
}

func (c *redisProfileCache) Invalidate(ctx context.Context, userID string) error {
	err := c.db.Del(ctx, cacheKey(userID, profileKeySuffix), cacheKey(userID, platformsKeySuffix)).Err()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisProfileCache.Invalidate").Str("user_id", userID).Msg("failed to delete keys")
		return err
	}
	return nil
}

func (c *redisProfileCache) get(ctx context.Context, key string, dst any) error {
	raw, err := c.db.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisProfileCache.get").Str("key", key).Msg("failed to read key")
		return err
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		// a value we cannot read is as good as none
		return ErrCacheMiss
	}
	return nil
}

func (c *redisProfileCache) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err = c.db.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisProfileCache.set").Str("key", key).Msg("failed to write key")
		return err
	}
	return nil
}

func cacheKey(userID, suffix string) string {
	return fmt.Sprintf("%s:user:%s:%s", CacheKeyPrefix, userID, suffix)
}

// nopProfileCache is used when Redis is not configured: every read misses.
type nopProfileCache struct{}

func NewNopProfileCache() ProfileCache {
	return nopProfileCache{}
}

func (nopProfileCache) GetProfile(context.Context, string) (models.Profile, error) {
	return models.Profile{}, ErrCacheMiss
}

func (nopProfileCache) SetProfile(context.Context, string, models.Profile) error { return nil }

func (nopProfileCache) GetPlatforms(context.Context, string) ([]models.Platform, error) {
	return nil, ErrCacheMiss
}

func (nopProfileCache) SetPlatforms(context.Context, string, []models.Platform) error { return nil }

func (nopProfileCache) Invalidate(context.Context, string) error { return nil }
