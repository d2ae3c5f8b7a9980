// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the profile editor uses to
// talk to the user service.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of the
// transport. The server's {"error": ...} text is kept in the wrapped message
// and can be read back with [ServerMessage].
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-profile-editor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the user
// service. Every method addresses a single user by its id.
type ServerAdapter interface {
	// GetProfile fetches the four profile fields of the user.
	GetProfile(ctx context.Context, userID string) (models.Profile, error)

	// UpdateProfile sends a partial profile update. Nil fields are omitted
	// from the request body. The editor saves through SaveProfile; this and
	// ReplacePlatforms cover the split write endpoints for other callers.
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) error

	// GetPlatforms fetches the ordered platform list. A user without
	// platforms yields an empty, non-nil slice.
	GetPlatforms(ctx context.Context, userID string) ([]models.Platform, error)

	// ReplacePlatforms overwrites the stored platform list.
	ReplacePlatforms(ctx context.Context, userID string, platforms []models.Platform) error

	// SaveProfile writes profile fields and the platform list with the
	// combined endpoint, which the server applies as one statement.
	SaveProfile(ctx context.Context, userID string, req models.ProfileSaveRequest) error

	// GetProfilePicture fetches the stored picture reference.
	GetProfilePicture(ctx context.Context, userID string) (string, error)

	// UploadPicture sends content as the multipart "file" field.
	UploadPicture(ctx context.Context, userID string, filename string, content io.Reader) error

	// GetVersion returns the version string reported by the server.
	GetVersion(ctx context.Context) (string, error)
}
