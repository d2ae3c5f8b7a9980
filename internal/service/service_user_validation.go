package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-profile-editor/internal/validators"
	"github.com/MKhiriev/go-profile-editor/models"
)

// UserValidationService rejects malformed ids and payloads before anything
// reaches the store, and hands normalized ids to the wrapped service.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	id, err := v.userID(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}
	return v.inner.GetProfile(ctx, id)
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) error {
	id, err := v.userID(ctx, userID)
	if err != nil {
		return err
	}
	return v.inner.UpdateProfile(ctx, id, update)
}

func (v *UserValidationService) GetPlatforms(ctx context.Context, userID string) ([]models.Platform, error) {
	id, err := v.userID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return v.inner.GetPlatforms(ctx, id)
}

func (v *UserValidationService) ReplacePlatforms(ctx context.Context, userID string, req models.PlatformsRequest) error {
	id, err := v.userID(ctx, userID)
	if err != nil {
		return err
	}
	if err = v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return v.inner.ReplacePlatforms(ctx, id, req)
}

func (v *UserValidationService) SaveProfile(ctx context.Context, userID string, req models.ProfileSaveRequest) error {
	id, err := v.userID(ctx, userID)
	if err != nil {
		return err
	}
	if err = v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return v.inner.SaveProfile(ctx, id, req)
}

func (v *UserValidationService) GetProfilePicture(ctx context.Context, userID string) (string, error) {
	id, err := v.userID(ctx, userID)
	if err != nil {
		return "", err
	}
	return v.inner.GetProfilePicture(ctx, id)
}

// UploadPicture checks the file first: a missing file is a client error even
// when the id is malformed as well.
func (v *UserValidationService) UploadPicture(ctx context.Context, userID string, picture models.PictureUpload) (string, error) {
	if err := v.validator.Validate(ctx, picture); err != nil {
		if errors.Is(err, validators.ErrEmptyPicture) {
			return "", fmt.Errorf("%w: %w", ErrNoPictureProvided, err)
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	id, err := v.userID(ctx, userID)
	if err != nil {
		return "", err
	}
	return v.inner.UploadPicture(ctx, id, picture)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}

func (v *UserValidationService) userID(ctx context.Context, userID string) (string, error) {
	if err := v.validator.Validate(ctx, userID, validators.FieldUserID); err != nil {
		return "", err
	}
	return validators.NormalizeUserID(userID), nil
}
