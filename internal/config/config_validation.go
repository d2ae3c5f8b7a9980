// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] can start a server.
// All failed groups are reported at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			errs = append(errs, fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}

	if err := cfg.Storage.Pictures.validate(); err != nil {
		errs = append(errs, err)
	}

	if len(cfg.Events.KafkaBrokers) > 0 && cfg.Events.KafkaTopic == "" {
		errs = append(errs, ErrInvalidEventsConfigs)
	}

	return errors.Join(errs...)
}

func (p Pictures) validate() error {
	switch p.Backend {
	case PicturesBackendFile:
		if p.Dir == "" {
			return fmt.Errorf("%w: empty directory", ErrInvalidPicturesConfigs)
		}
	case PicturesBackendCloudinary:
		if p.Cloudinary.CloudName == "" || p.Cloudinary.APIKey == "" || p.Cloudinary.APISecret == "" {
			return fmt.Errorf("%w: incomplete cloudinary credentials", ErrInvalidPicturesConfigs)
		}
	case PicturesBackendGCS:
		if p.GCS.Bucket == "" {
			return fmt.Errorf("%w: empty bucket", ErrInvalidPicturesConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidPicturesConfigs, p.Backend)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Session.UserID == "" && cfg.Session.Token == "" {
		return ErrInvalidSessionConfigs
	}

	return nil
}
