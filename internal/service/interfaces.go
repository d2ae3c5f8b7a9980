package service

import (
	"context"

	"github.com/MKhiriev/go-profile-editor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper

// UserService reads and updates the profile of one user. userID is the raw
// path value; implementations validate and normalize it.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) error

	GetPlatforms(ctx context.Context, userID string) ([]models.Platform, error)
	ReplacePlatforms(ctx context.Context, userID string, req models.PlatformsRequest) error

	// SaveProfile writes profile fields and platforms with one store statement.
	SaveProfile(ctx context.Context, userID string, req models.ProfileSaveRequest) error

	GetProfilePicture(ctx context.Context, userID string) (string, error)
	// UploadPicture stores the picture and returns its reference.
	UploadPicture(ctx context.Context, userID string, picture models.PictureUpload) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating, caching or publishing events.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
