package models

// Platform is a single social link of a user, e.g. {"Linkedin", "https://..."}.
type Platform struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// PlatformsRequest is the body of PUT /users/{id}/platforms.
// The list replaces the stored one wholesale; an empty (non-nil) list clears it.
type PlatformsRequest struct {
	Platforms []Platform `json:"platforms" validate:"required,dive"`
}

// ProfileSaveRequest is the body of the combined PUT /users/{id}/profile.
// Profile fields and the platform list are written by a single statement.
// A missing or null "platforms" leaves the stored list as it is, an empty
// list clears it.
type ProfileSaveRequest struct {
	ProfileUpdate
	Platforms []Platform `json:"platforms" validate:"omitempty,dive"`
}
