package editor

import "errors"

// MsgDuplicatePlatforms is shown when Save finds the same platform twice.
const MsgDuplicatePlatforms = "Error: Cannot save duplicate entries of the same platform."

var (
	ErrRowOutOfRange      = errors.New("platform row index out of range")
	ErrUnknownField       = errors.New("unknown profile field")
	ErrDuplicatePlatforms = errors.New("duplicate platform entries")
	ErrLoadingProfile     = errors.New("cannot load profile")
	ErrLoadingPlatforms   = errors.New("cannot load platforms")
	ErrSaving             = errors.New("cannot save profile")
	ErrUploading          = errors.New("cannot upload picture")
	ErrFetchingPicture    = errors.New("cannot fetch picture reference")
	ErrNoIdentity         = errors.New("cannot resolve the user to edit")
)
