package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-profile-editor/internal/adapter"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/validators"
	"github.com/MKhiriev/go-profile-editor/models"
)

type clientProfileService struct {
	serverAdapter adapter.ServerAdapter
	logger        *logger.Logger
}

// NewClientProfileService returns a [ClientProfileService] talking to the
// server through serverAdapter.
func NewClientProfileService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{serverAdapter: serverAdapter, logger: logger}
}

func (c *clientProfileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	if err := validators.ValidateUserID(userID); err != nil {
		return models.Profile{}, ErrInvalidUserID
	}

	profile, err := c.serverAdapter.GetProfile(ctx, userID)
	if err != nil {
		c.logger.Err(err).Str("func", "*clientProfileService.GetProfile").Str("user_id", userID).Msg("fetching profile failed")
		return models.Profile{}, mapAdapterError(err)
	}
	return profile, nil
}

func (c *clientProfileService) GetPlatforms(ctx context.Context, userID string) ([]models.Platform, error) {
	if err := validators.ValidateUserID(userID); err != nil {
		return nil, ErrInvalidUserID
	}

	platforms, err := c.serverAdapter.GetPlatforms(ctx, userID)
	if err != nil {
		c.logger.Err(err).Str("func", "*clientProfileService.GetPlatforms").Str("user_id", userID).Msg("fetching platforms failed")
		return nil, mapAdapterError(err)
	}
	return platforms, nil
}

func (c *clientProfileService) GetProfilePicture(ctx context.Context, userID string) (string, error) {
	if err := validators.ValidateUserID(userID); err != nil {
		return "", ErrInvalidUserID
	}

	picture, err := c.serverAdapter.GetProfilePicture(ctx, userID)
	if err != nil {
		c.logger.Err(err).Str("func", "*clientProfileService.GetProfilePicture").Str("user_id", userID).Msg("fetching picture reference failed")
		return "", mapAdapterError(err)
	}
	return picture, nil
}

func (c *clientProfileService) SaveProfile(ctx context.Context, userID string, req models.ProfileSaveRequest) error {
	if err := validators.ValidateUserID(userID); err != nil {
		return ErrInvalidUserID
	}
	if req.Platforms == nil {
		req.Platforms = []models.Platform{}
	}

	if err := c.serverAdapter.SaveProfile(ctx, userID, req); err != nil {
		c.logger.Err(err).Str("func", "*clientProfileService.SaveProfile").Str("user_id", userID).Msg("saving profile failed")
		return mapAdapterError(err)
	}

	c.logger.Debug().Str("func", "*clientProfileService.SaveProfile").Str("user_id", userID).
		Int("platforms", len(req.Platforms)).Msg("profile saved")
	return nil
}

func (c *clientProfileService) UploadPicture(ctx context.Context, userID string, path string) error {
	if err := validators.ValidateUserID(userID); err != nil {
		return ErrInvalidUserID
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpeningPicture, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrPictureIsFolder, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpeningPicture, err)
	}
	defer file.Close()

	if err = c.serverAdapter.UploadPicture(ctx, userID, filepath.Base(path), file); err != nil {
		c.logger.Err(err).Str("func", "*clientProfileService.UploadPicture").Str("user_id", userID).Msg("uploading picture failed")
		return mapAdapterError(err)
	}
	return nil
}

func (c *clientProfileService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.serverAdapter.GetVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}
