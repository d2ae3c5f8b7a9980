package service

import "errors"

var (
	// ErrInvalidPayload wraps decoding and validation failures of request bodies.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrNoPictureProvided is returned for an upload without a file or with an empty one.
	ErrNoPictureProvided = errors.New("no picture provided")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side business errors, mapped back from server replies.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrServerFailure   = errors.New("server failed to process the request")
	ErrUnreachable     = errors.New("server is unreachable")
	ErrOpeningPicture  = errors.New("cannot open picture file")
	ErrPictureIsFolder = errors.New("picture path is a directory")
)
