package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/store"
	"github.com/MKhiriev/go-profile-editor/models"
)

// userService talks to the store. It expects ids and payloads to be
// validated already, see [UserValidationService].
type userService struct {
	users    store.UserRepository
	pictures store.PictureStorage

	logger *logger.Logger
}

func NewUserService(users store.UserRepository, pictures store.PictureStorage, logger *logger.Logger) UserService {
	return &userService{
		users:    users,
		pictures: pictures,
		logger:   logger,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	return s.users.GetProfile(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) error {
	return s.users.UpdateProfile(ctx, userID, update)
}

func (s *userService) GetPlatforms(ctx context.Context, userID string) ([]models.Platform, error) {
	return s.users.GetPlatforms(ctx, userID)
}

func (s *userService) ReplacePlatforms(ctx context.Context, userID string, req models.PlatformsRequest) error {
	return s.users.ReplacePlatforms(ctx, userID, req.Platforms)
}

func (s *userService) SaveProfile(ctx context.Context, userID string, req models.ProfileSaveRequest) error {
	return s.users.SaveProfile(ctx, userID, req)
}

func (s *userService) GetProfilePicture(ctx context.Context, userID string) (string, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	return profile.ProfilePicture, nil
}

// UploadPicture stores the blob, then points the profile at it. A blob whose
// reference could not be recorded is deleted again; the previous picture is
// deleted only after the new reference is in place.
func (s *userService) UploadPicture(ctx context.Context, userID string, picture models.PictureUpload) (string, error) {
	log := logger.FromContext(ctx)

	current, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	reference, err := s.pictures.Save(ctx, userID, picture)
	if err != nil {
		return "", err
	}

	if err = s.users.UpdateProfile(ctx, userID, models.ProfileUpdate{ProfilePicture: &reference}); err != nil {
		log.Err(err).Str("func", "*userService.UploadPicture").Str("user_id", userID).Msg("failed to record picture reference")
		// same content may already be the current picture
		if reference != current.ProfilePicture {
			s.deletePicture(ctx, reference)
		}
		return "", err
	}

	if current.ProfilePicture != "" && current.ProfilePicture != reference {
		s.deletePicture(ctx, current.ProfilePicture)
	}

	return reference, nil
}

// deletePicture removes a blob on a best-effort basis.
func (s *userService) deletePicture(ctx context.Context, reference string) {
	log := logger.FromContext(ctx)

	err := s.pictures.Delete(ctx, reference)
	switch {
	case err == nil:
		log.Debug().Str("func", "*userService.deletePicture").Str("reference", reference).Msg("picture deleted")
	case errors.Is(err, store.ErrForeignPicture):
		log.Debug().Str("func", "*userService.deletePicture").Str("reference", reference).Msg("picture is not ours, kept")
	default:
		log.Warn().Err(err).Str("func", "*userService.deletePicture").Str("reference", reference).Msg("failed to delete picture")
	}
}
