package models

import "time"

// ProfileEventType names the mutation that produced a [ProfileEvent].
type ProfileEventType string

const (
	ProfileUpdated   ProfileEventType = "profile_updated"
	PlatformsUpdated ProfileEventType = "platforms_updated"
	ProfileSaved     ProfileEventType = "profile_saved"
	PictureUploaded  ProfileEventType = "picture_uploaded"
)

// ProfileEvent is published after a successful mutation of a user record.
type ProfileEvent struct {
	Type       ProfileEventType `json:"type"`
	UserID     string           `json:"user_id"`
	OccurredAt time.Time        `json:"occurred_at"`

	// Fields lists the JSON names of the profile fields that were written.
	Fields []string `json:"fields,omitempty"`
	// Platforms is set for events that replaced the platform list.
	Platforms []Platform `json:"platforms,omitempty"`
	// ProfilePicture is the new picture reference for PictureUploaded.
	ProfilePicture string `json:"profile_picture,omitempty"`
}
