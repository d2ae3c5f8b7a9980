// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// profile server handlers and by the client when it maps server replies
// back to business errors.
//
// All Msg* constants are human-readable strings written into the
// {"error": ...} and {"message": ...} response bodies.
package app

// Error messages. Every one of them except MsgNoFileUploaded travels with
// HTTP 500; the text is what tells the kinds apart.
const (
	// MsgInvalidUserID is returned when the path id is not 24 hex characters.
	MsgInvalidUserID = "invalid user id"

	// MsgUserNotFound is returned when no user row matches the id.
	MsgUserNotFound = "user not found"

	// MsgInvalidPayload is returned when the body cannot be decoded or a
	// field has the wrong shape (e.g. an array instead of a string).
	MsgInvalidPayload = "invalid payload"

	// MsgNoFileUploaded is returned with HTTP 400 when the multipart "file"
	// field is missing or empty.
	MsgNoFileUploaded = "no file uploaded"

	// MsgInternalServerError is returned for any store or storage failure.
	MsgInternalServerError = "internal server error"
)

// Success messages.
const (
	MsgProfileUpdated   = "profile updated"
	MsgPlatformsUpdated = "platforms updated"
	MsgProfileSaved     = "profile and platforms saved"
	MsgPictureUploaded  = "profile picture uploaded"
)
