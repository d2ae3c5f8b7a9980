package service

import (
	"context"

	"github.com/MKhiriev/go-profile-editor/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientProfileService defines the client-side contract for reading and
// writing the profile of a single user through the server adapter.
//
// Every method returns the business errors of this package (ErrUserNotFound,
// ErrInvalidUserID, ErrInvalidPayload, ErrNoPictureProvided, ...) rather than
// transport errors, so that the editor can show a meaningful message.
type ClientProfileService interface {
	// GetProfile fetches the four profile fields.
	GetProfile(ctx context.Context, userID string) (models.Profile, error)

	// GetPlatforms fetches the ordered platform list.
	GetPlatforms(ctx context.Context, userID string) ([]models.Platform, error)

	// SaveProfile persists profile fields and platforms in one request.
	SaveProfile(ctx context.Context, userID string, req models.ProfileSaveRequest) error

	// GetProfilePicture fetches the picture reference stored on the server.
	GetProfilePicture(ctx context.Context, userID string) (string, error)

	// UploadPicture reads the file at path and uploads it as the profile
	// picture. The picture reference is not fetched back.
	UploadPicture(ctx context.Context, userID string, path string) error

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
