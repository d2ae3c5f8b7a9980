package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/store"
	"github.com/MKhiriev/go-profile-editor/models"
)

// UserCacheService serves reads from the profile cache and drops the cached
// entries of a user after every successful write. Cache failures are logged
// and never fail the request.
//
// A read that misses may race a write: it can load the old row, then cache it
// after the write invalidated. Every write bumps the user's generation before
// invalidating, and a read that sees the generation move while it was filling
// the cache invalidates again. Generations are per process, so replicas
// sharing one Redis still rely on the TTL for this window.
type UserCacheService struct {
	inner UserService
	cache store.ProfileCache
	gens  *generations
}

func NewUserCacheService(cache store.ProfileCache) UserServiceWrapper {
	return &UserCacheService{cache: cache, gens: newGenerations()}
}

// generations counts successful writes per user. Entries are never removed:
// a reader compares against the value it saw, and a reset would look unchanged.
type generations struct {
	mu sync.Mutex
	m  map[string]uint64
}

func newGenerations() *generations {
	return &generations{m: make(map[string]uint64)}
}

func (g *generations) current(userID string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.m[userID]
}

func (g *generations) bump(userID string) {
	g.mu.Lock()
	g.m[userID]++
	g.mu.Unlock()
}

func (c *UserCacheService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := c.cache.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		log.Warn().Err(err).Str("func", "*UserCacheService.GetProfile").Str("user_id", userID).Msg("cache read failed")
	}

	gen := c.gens.current(userID)
	profile, err = c.inner.GetProfile(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}

	if err = c.cache.SetProfile(ctx, userID, profile); err != nil {
		log.Warn().Err(err).Str("func", "*UserCacheService.GetProfile").Str("user_id", userID).Msg("cache write failed")
		return profile, nil
	}
	c.dropIfWritten(ctx, userID, gen)
	return profile, nil
}

func (c *UserCacheService) GetPlatforms(ctx context.Context, userID string) ([]models.Platform, error) {
	log := logger.FromContext(ctx)

	platforms, err := c.cache.GetPlatforms(ctx, userID)
	if err == nil {
		return platforms, nil
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		log.Warn().Err(err).Str("func", "*UserCacheService.GetPlatforms").Str("user_id", userID).Msg("cache read failed")
	}

	gen := c.gens.current(userID)
	platforms, err = c.inner.GetPlatforms(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err = c.cache.SetPlatforms(ctx, userID, platforms); err != nil {
		log.Warn().Err(err).Str("func", "*UserCacheService.GetPlatforms").Str("user_id", userID).Msg("cache write failed")
		return platforms, nil
	}
	c.dropIfWritten(ctx, userID, gen)
	return platforms, nil
}

func (c *UserCacheService) GetProfilePicture(ctx context.Context, userID string) (string, error) {
	profile, err := c.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	return profile.ProfilePicture, nil
}

func (c *UserCacheService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) error {
	if err := c.inner.UpdateProfile(ctx, userID, update); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

func (c *UserCacheService) ReplacePlatforms(ctx context.Context, userID string, req models.PlatformsRequest) error {
	if err := c.inner.ReplacePlatforms(ctx, userID, req); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

func (c *UserCacheService) SaveProfile(ctx context.Context, userID string, req models.ProfileSaveRequest) error {
	if err := c.inner.SaveProfile(ctx, userID, req); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

func (c *UserCacheService) UploadPicture(ctx context.Context, userID string, picture models.PictureUpload) (string, error) {
	reference, err := c.inner.UploadPicture(ctx, userID, picture)
	if err != nil {
		return "", err
	}
	c.invalidate(ctx, userID)
	return reference, nil
}

func (c *UserCacheService) Wrap(wrapper UserService) UserService {
	c.inner = wrapper
	return c
}

// dropIfWritten removes what a read just cached when a write finished after
// the read started.
func (c *UserCacheService) dropIfWritten(ctx context.Context, userID string, gen uint64) {
	if c.gens.current(userID) != gen {
		c.dropCached(ctx, userID)
	}
}

// invalidate runs after a successful write.
func (c *UserCacheService) invalidate(ctx context.Context, userID string) {
	c.gens.bump(userID)
	c.dropCached(ctx, userID)
}

func (c *UserCacheService) dropCached(ctx context.Context, userID string) {
	if err := c.cache.Invalidate(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*UserCacheService.dropCached").
			Str("user_id", userID).
			Msg("cache invalidation failed, stale entries live until ttl")
	}
}
