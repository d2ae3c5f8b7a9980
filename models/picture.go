package models

import "io"

// PictureUpload is a profile picture received from the client.
// Content is read exactly once by the picture storage.
type PictureUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ProfilePictureResponse is the body of GET /users/{id}/profilePicture.
type ProfilePictureResponse struct {
	ProfilePicture string `json:"profile_picture"`
}
