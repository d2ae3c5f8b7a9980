package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidUserID is returned for ids that are not 24 hex characters.
	ErrInvalidUserID = errors.New("invalid user ID")
	// ErrMissingPlatforms is returned when the platforms key is absent.
	ErrMissingPlatforms = errors.New("platforms list is required")
	// ErrInvalidPlatform is returned when a platform entry lacks a name or a value.
	ErrInvalidPlatform = errors.New("platform entry requires name and value")
	// ErrEmptyPicture is returned for an upload with no bytes.
	ErrEmptyPicture = errors.New("picture is empty")
)
