// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-profile-editor/internal/adapter"
	"github.com/MKhiriev/go-profile-editor/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error.
// The server answers most failures with HTTP 500, so the {"error"} text decides the kind.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.ServerMessage(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgNoFileUploaded {
			return ErrNoPictureProvided
		}
		return fmt.Errorf("%w: %s", ErrInvalidPayload, msg)

	case errors.Is(err, adapter.ErrInternalServerError):
		switch msg {
		case app.MsgInvalidUserID:
			return ErrInvalidUserID
		case app.MsgUserNotFound:
			return ErrUserNotFound
		case app.MsgInvalidPayload:
			return ErrInvalidPayload
		}
		return fmt.Errorf("%w: %s", ErrServerFailure, msg)

	case errors.Is(err, adapter.ErrSendingRequest):
		return fmt.Errorf("%w: %w", ErrUnreachable, err)

	case errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrMethodNotAllowed),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrUnexpectedStatus):
		return fmt.Errorf("%w: %w", ErrServerFailure, err)
	}

	return err
}
