// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package editor holds the state of the profile editor and the transitions
// the terminal UI drives it through.
//
// Local edits (fields, platform rows) are pure in-memory transitions. Load,
// Save and UploadPicture block on the network and are meant to be called
// from bubbletea commands. Every failure ends up in a single error message
// that the UI renders as is.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/service"
	"github.com/MKhiriev/go-profile-editor/internal/session"
	"github.com/MKhiriev/go-profile-editor/models"
	"github.com/sourcegraph/conc"
)

// Field names a profile field editable through [Editor.SetField].
type Field string

const (
	FieldEmail     Field = "email"
	FieldFirstName Field = "first_name"
	FieldLastName  Field = "last_name"
)

// PlatformOptions are the platform names offered by the UI, in display order.
// Free-text names are accepted as well.
var PlatformOptions = []string{
	"Phone number",
	"Personal website",
	"Linkedin",
	"Instagram",
	"Facebook",
	"Twitter",
	"Github",
}

// State is a snapshot of the editor.
type State struct {
	Profile   models.Profile
	Platforms []models.Platform

	// ErrorMessage is the single error channel of the editor. Empty means no error.
	ErrorMessage string

	// PicturePreview is what the UI shows as the picture: the stored
	// reference after Load, the local file path after an upload.
	PicturePreview string
}

// Editor is safe for concurrent use.
type Editor struct {
	mu    sync.Mutex
	state State

	profiles service.ClientProfileService
	identity session.Provider

	logger *logger.Logger
}

func New(profiles service.ClientProfileService, identity session.Provider, logger *logger.Logger) *Editor {
	return &Editor{
		state:    State{Platforms: []models.Platform{}},
		profiles: profiles,
		identity: identity,
		logger:   logger,
	}
}

// Snapshot returns a copy of the current state.
func (e *Editor) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.state
	s.Platforms = append([]models.Platform{}, e.state.Platforms...)
	return s
}

// Load fetches the profile and the platform list concurrently. A failed
// fetch leaves its part of the state untouched; all failures are joined into
// the error message and the returned error.
func (e *Editor) Load(ctx context.Context) error {
	userID, err := e.userID()
	if err != nil {
		return err
	}

	var (
		profile      models.Profile
		platforms    []models.Platform
		profileErr   error
		platformsErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		profile, profileErr = e.profiles.GetProfile(ctx, userID)
	})
	wg.Go(func() {
		platforms, platformsErr = e.profiles.GetPlatforms(ctx, userID)
	})
	wg.Wait()

	var errs []error

	e.mu.Lock()
	defer e.mu.Unlock()

	if profileErr != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrLoadingProfile, profileErr))
	} else {
		e.state.Profile = profile
		e.state.PicturePreview = profile.ProfilePicture
	}

	if platformsErr != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrLoadingPlatforms, platformsErr))
	} else {
		if platforms == nil {
			platforms = []models.Platform{}
		}
		e.state.Platforms = platforms
	}

	err = errors.Join(errs...)
	if err != nil {
		e.logger.Err(err).Str("func", "*Editor.Load").Str("user_id", userID).Msg("loading failed")
		e.state.ErrorMessage = errorText(err)
		return err
	}

	e.state.ErrorMessage = ""
	return nil
}

// SetField writes value into one of the profile fields.
func (e *Editor) SetField(field Field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch field {
	case FieldEmail:
		e.state.Profile.Email = value
	case FieldFirstName:
		e.state.Profile.FirstName = value
	case FieldLastName:
		e.state.Profile.LastName = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// AddPlatform appends a blank row and returns its index.
func (e *Editor) AddPlatform() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Platforms = append(e.state.Platforms, models.Platform{})
	return len(e.state.Platforms) - 1
}

func (e *Editor) DeletePlatform(i int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkRow(i); err != nil {
		return err
	}

	platforms := make([]models.Platform, 0, len(e.state.Platforms)-1)
	platforms = append(platforms, e.state.Platforms[:i]...)
	e.state.Platforms = append(platforms, e.state.Platforms[i+1:]...)
	return nil
}

func (e *Editor) SetPlatformName(i int, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkRow(i); err != nil {
		return err
	}
	e.state.Platforms[i].Name = name
	return nil
}

func (e *Editor) SetPlatformValue(i int, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkRow(i); err != nil {
		return err
	}
	e.state.Platforms[i].Value = value
	return nil
}

// CyclePlatformName moves row i to the next (step > 0) or previous option of
// PlatformOptions, passing through the empty "no platform" choice.
func (e *Editor) CyclePlatformName(i int, step int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkRow(i); err != nil {
		return err
	}
	e.state.Platforms[i].Name = NextPlatformName(e.state.Platforms[i].Name, step)
	return nil
}

// Save persists the profile fields and the platform list.
//
// Duplicate named rows with a value abort the save with
// [MsgDuplicatePlatforms] and no request is sent. Otherwise rows with an
// empty name or value are dropped, the rest is sent in one request, and on
// success the local rows become the sent list.
func (e *Editor) Save(ctx context.Context) error {
	e.mu.Lock()
	if hasDuplicatePlatforms(e.state.Platforms) {
		e.state.ErrorMessage = MsgDuplicatePlatforms
		e.mu.Unlock()
		return ErrDuplicatePlatforms
	}

	e.state.ErrorMessage = ""
	platforms := filterPlatforms(e.state.Platforms)
	profile := e.state.Profile
	e.mu.Unlock()

	userID, err := e.userID()
	if err != nil {
		return err
	}

	req := models.ProfileSaveRequest{
		ProfileUpdate: models.ProfileUpdate{
			Email:     &profile.Email,
			FirstName: &profile.FirstName,
			LastName:  &profile.LastName,
		},
		Platforms: platforms,
	}

	if err = e.profiles.SaveProfile(ctx, userID, req); err != nil {
		err = fmt.Errorf("%w: %w", ErrSaving, err)
		e.logger.Err(err).Str("func", "*Editor.Save").Str("user_id", userID).Msg("saving failed")
		e.setError(err)
		return err
	}

	e.mu.Lock()
	e.state.Platforms = platforms
	e.mu.Unlock()
	return nil
}

// UploadPicture sends the file at path right away, independently of Save.
// On success only the local preview changes; the stored reference is not
// fetched back.
func (e *Editor) UploadPicture(ctx context.Context, path string) error {
	path = strings.TrimSpace(path)

	userID, err := e.userID()
	if err != nil {
		return err
	}

	if err = e.profiles.UploadPicture(ctx, userID, path); err != nil {
		err = fmt.Errorf("%w: %w", ErrUploading, err)
		e.logger.Err(err).Str("func", "*Editor.UploadPicture").Str("user_id", userID).Msg("upload failed")
		e.setError(err)
		return err
	}

	e.mu.Lock()
	e.state.PicturePreview = path
	e.state.ErrorMessage = ""
	e.mu.Unlock()
	return nil
}

// PictureReference asks the server for the stored picture reference. The
// local preview is left as it is.
func (e *Editor) PictureReference(ctx context.Context) (string, error) {
	userID, err := e.userID()
	if err != nil {
		return "", err
	}

	reference, err := e.profiles.GetProfilePicture(ctx, userID)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrFetchingPicture, err)
		e.logger.Err(err).Str("func", "*Editor.PictureReference").Str("user_id", userID).Msg("fetching picture reference failed")
		e.setError(err)
		return "", err
	}
	return reference, nil
}

// ClearError empties the error message.
func (e *Editor) ClearError() {
	e.mu.Lock()
	e.state.ErrorMessage = ""
	e.mu.Unlock()
}

func (e *Editor) userID() (string, error) {
	id, err := e.identity.UserID()
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrNoIdentity, err)
		e.setError(err)
		return "", err
	}
	return id, nil
}

func (e *Editor) setError(err error) {
	e.mu.Lock()
	e.state.ErrorMessage = errorText(err)
	e.mu.Unlock()
}

// checkRow must be called with e.mu held.
func (e *Editor) checkRow(i int) error {
	if i < 0 || i >= len(e.state.Platforms) {
		return fmt.Errorf("%w: %d of %d", ErrRowOutOfRange, i, len(e.state.Platforms))
	}
	return nil
}

// errorText prefixes every line of err with "Error: ".
func errorText(err error) string {
	lines := strings.Split(err.Error(), "\n")
	for i, line := range lines {
		lines[i] = "Error: " + line
	}
	return strings.Join(lines, "\n")
}
