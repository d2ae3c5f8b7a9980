// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the profile service: the users
// table (PostgreSQL or SQLite), the profile picture storages (local
// directory, Cloudinary, Google Cloud Storage) and the Redis profile cache.
package store

import (
	"context"

	"github.com/MKhiriev/go-profile-editor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads and writes user rows. Every method returns
// [ErrUserNotFound] when no row matches userID.
type UserRepository interface {
	// GetProfile returns the four profile fields of the user.
	GetProfile(ctx context.Context, userID string) (models.Profile, error)

	// GetPlatforms returns the stored platform list, never nil.
	GetPlatforms(ctx context.Context, userID string) ([]models.Platform, error)

	// UpdateProfile writes the non-nil fields of update.
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) error

	// ReplacePlatforms overwrites the platform list.
	ReplacePlatforms(ctx context.Context, userID string, platforms []models.Platform) error

	// SaveProfile writes profile fields and, if non-nil, the platform list
	// with a single UPDATE statement.
	SaveProfile(ctx context.Context, userID string, req models.ProfileSaveRequest) error

	// Ping checks the database connection.
	Ping(ctx context.Context) error
}

// PictureStorage keeps profile picture blobs.
type PictureStorage interface {
	// Save stores the picture of userID and returns the reference that is
	// written to the profile_picture field (a path or a URL).
	Save(ctx context.Context, userID string, picture models.PictureUpload) (string, error)

	// Delete removes a blob by the reference Save returned. References that
	// were not produced by this storage yield [ErrForeignPicture].
	Delete(ctx context.Context, reference string) error
}

// ProfileCache is a read-through cache of profiles and platform lists.
// Getters return [ErrCacheMiss] when the key is absent.
type ProfileCache interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	SetProfile(ctx context.Context, userID string, profile models.Profile) error
	GetPlatforms(ctx context.Context, userID string) ([]models.Platform, error)
	SetPlatforms(ctx context.Context, userID string, platforms []models.Platform) error

	// Invalidate drops everything cached for userID.
	Invalidate(ctx context.Context, userID string) error
}
