package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-profile-editor/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldUserID    = "user_id"
	FieldPlatforms = "platforms"
	FieldPicture   = "picture"
)

// userIDPattern is the shape of store-assigned ids: 12 bytes, hex encoded.
var userIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// UserValidator validates user ids and the bodies of the profile endpoints.
type UserValidator struct {
	structs *validator.Validate
}

func NewUserValidator() Validator {
	return &UserValidator{
		structs: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate dispatches on the type of obj.
//
// A plain string is validated as a user id and requires [FieldUserID] among
// fields. Platform lists, platform requests, combined save requests and
// picture uploads are validated by value or by pointer.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		if !hasField(fields, FieldUserID) {
			return ErrUnknownField
		}
		return ValidateUserID(value)

	case []models.Platform:
		return v.validatePlatforms(value)

	case models.PlatformsRequest:
		return v.validatePlatformsRequest(value)
	case *models.PlatformsRequest:
		return v.validatePlatformsRequest(*value)

	case models.ProfileSaveRequest:
		return v.validatePlatforms(value.Platforms)
	case *models.ProfileSaveRequest:
		return v.validatePlatforms(value.Platforms)

	case models.PictureUpload:
		return validatePicture(value)
	case *models.PictureUpload:
		return validatePicture(*value)

	default:
		return ErrUnsupportedType
	}
}

// ValidateUserID reports whether id has the store id shape.
func ValidateUserID(id string) error {
	if !userIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidUserID, id)
	}
	return nil
}

// NormalizeUserID returns the canonical (lowercase) form of a valid id.
func NormalizeUserID(id string) string {
	return strings.ToLower(id)
}

func (v *UserValidator) validatePlatformsRequest(req models.PlatformsRequest) error {
	if req.Platforms == nil {
		return ErrMissingPlatforms
	}
	return v.validatePlatforms(req.Platforms)
}

func (v *UserValidator) validatePlatforms(platforms []models.Platform) error {
	for i, p := range platforms {
		if err := v.structs.Struct(p); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				return fmt.Errorf("%w: entry %d: field %s", ErrInvalidPlatform, i, strings.ToLower(verrs[0].Field()))
			}
			return fmt.Errorf("%w: entry %d: %v", ErrInvalidPlatform, i, err)
		}
	}
	return nil
}

func validatePicture(p models.PictureUpload) error {
	if p.Content == nil || p.Size <= 0 {
		return ErrEmptyPicture
	}
	return nil
}

func hasField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
