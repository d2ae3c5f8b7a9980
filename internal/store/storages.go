package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
)

// Storages bundles every persistence component the server needs.
type Storages struct {
	UserRepository UserRepository
	PictureStorage PictureStorage
	ProfileCache   ProfileCache

	// PicturesHandler serves stored pictures under PicturesPath. It is nil
	// for remote backends, whose references are absolute URLs.
	PicturesHandler http.Handler
	PicturesPath    string

	closers []io.Closer
}

// NewStorages connects the database, applies migrations and builds the
// configured picture storage and cache.
func NewStorages(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}
	s := &Storages{closers: []io.Closer{db}}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		s.Close()
		return nil, err
	}
	s.UserRepository = NewUserRepository(db, log)

	if err = s.initPictures(ctx, cfg.Storage.Pictures, log); err != nil {
		s.Close()
		return nil, err
	}

	if cfg.Cache.RedisAddress == "" {
		log.Info().Str("func", "NewStorages").Msg("redis address is not set, profile cache disabled")
		s.ProfileCache = NewNopProfileCache()
		return s, nil
	}

	client, err := NewRedisClient(ctx, cfg.Cache, log)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.closers = append(s.closers, client)
	s.ProfileCache = NewRedisProfileCache(client, cfg.Cache.TTL)

	return s, nil
}

func (s *Storages) initPictures(ctx context.Context, cfg config.Pictures, log *logger.Logger) error {
	switch cfg.Backend {
	case config.PicturesBackendFile:
		files, err := NewFilePictureStorage(cfg.Dir, cfg.PublicPath, log)
		if err != nil {
			return err
		}
		s.PictureStorage = files
		s.PicturesHandler = files.Handler()
		s.PicturesPath = files.PublicPath()
	case config.PicturesBackendCloudinary:
		cld, err := NewCloudinaryPictureStorage(cfg.Cloudinary, log)
		if err != nil {
			return err
		}
		s.PictureStorage = cld
	case config.PicturesBackendGCS:
		gcs, err := NewGCSPictureStorage(ctx, cfg.GCS, log)
		if err != nil {
			return err
		}
		s.PictureStorage = gcs
		s.closers = append(s.closers, gcs)
	default:
		return fmt.Errorf("unknown pictures backend %q", cfg.Backend)
	}

	log.Info().Str("func", "NewStorages").Str("backend", cfg.Backend).Msg("picture storage ready")
	return nil
}

// Close releases every connection opened by NewStorages.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
