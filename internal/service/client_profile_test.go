// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-profile-editor/internal/adapter"
	"github.com/MKhiriev/go-profile-editor/internal/app"
	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/mock"
	"github.com/MKhiriev/go-profile-editor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientSvc(t *testing.T) (ClientProfileService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientProfileService(serverAdapter, logger.Nop()), serverAdapter
}

// newReplyingClientSvc wires the service to a real HTTP adapter whose server
// always answers with status and an {"error": msg} body.
func newReplyingClientSvc(t *testing.T, status int, msg string) ClientProfileService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: msg})
	}))
	t.Cleanup(srv.Close)

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return NewClientProfileService(serverAdapter, logger.Nop())
}

// ─────────────────────────────────────────────
// reads
// ─────────────────────────────────────────────

func TestClientProfileService_GetProfile(t *testing.T) {
	svc, serverAdapter := newTestClientSvc(t)
	want := models.Profile{Email: "ada@example.com", FirstName: "Ada"}

	serverAdapter.EXPECT().GetProfile(gomock.Any(), testUserID).Return(want, nil)

	got, err := svc.GetProfile(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientProfileService_InvalidIDNeverReachesServer(t *testing.T) {
	svc, _ := newTestClientSvc(t)
	ctx := context.Background()

	_, err := svc.GetProfile(ctx, "42")
	assert.ErrorIs(t, err, ErrInvalidUserID)

	_, err = svc.GetPlatforms(ctx, "42")
	assert.ErrorIs(t, err, ErrInvalidUserID)

	err = svc.SaveProfile(ctx, "42", models.ProfileSaveRequest{})
	assert.ErrorIs(t, err, ErrInvalidUserID)

	err = svc.UploadPicture(ctx, "42", "/tmp/whatever.png")
	assert.ErrorIs(t, err, ErrInvalidUserID)

	_, err = svc.GetProfilePicture(ctx, "42")
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestClientProfileService_GetProfilePicture(t *testing.T) {
	svc, serverAdapter := newTestClientSvc(t)

	serverAdapter.EXPECT().GetProfilePicture(gomock.Any(), testUserID).Return("/pictures/a.png", nil)

	got, err := svc.GetProfilePicture(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, "/pictures/a.png", got)
}

func TestClientProfileService_GetProfilePicture_UnknownUser(t *testing.T) {
	svc := newReplyingClientSvc(t, http.StatusInternalServerError, app.MsgUserNotFound)

	_, err := svc.GetProfilePicture(context.Background(), testUserID)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestClientProfileService_GetPlatforms_TransportFailure(t *testing.T) {
	svc, serverAdapter := newTestClientSvc(t)

	serverAdapter.EXPECT().GetPlatforms(gomock.Any(), testUserID).
		Return(nil, fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrSendingRequest))

	_, err := svc.GetPlatforms(context.Background(), testUserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreachable)
}

// ─────────────────────────────────────────────
// SaveProfile
// ─────────────────────────────────────────────

func TestClientProfileService_SaveProfile_NilPlatformsBecomeEmpty(t *testing.T) {
	svc, serverAdapter := newTestClientSvc(t)

	serverAdapter.EXPECT().SaveProfile(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.ProfileSaveRequest) error {
			assert.NotNil(t, req.Platforms)
			assert.Empty(t, req.Platforms)
			return nil
		})

	err := svc.SaveProfile(context.Background(), testUserID, models.ProfileSaveRequest{
		ProfileUpdate: models.ProfileUpdate{Email: strPtr("ada@example.com")},
	})

	require.NoError(t, err)
}

func TestClientProfileService_SaveProfile_ServerMessages(t *testing.T) {
	tests := []struct {
		name   string
		status int
		msg    string
		want   error
	}{
		{name: "user not found", status: http.StatusInternalServerError, msg: app.MsgUserNotFound, want: ErrUserNotFound},
		{name: "invalid user id", status: http.StatusInternalServerError, msg: app.MsgInvalidUserID, want: ErrInvalidUserID},
		{name: "invalid payload", status: http.StatusInternalServerError, msg: app.MsgInvalidPayload, want: ErrInvalidPayload},
		{name: "store failure", status: http.StatusInternalServerError, msg: app.MsgInternalServerError, want: ErrServerFailure},
		{name: "bad request", status: http.StatusBadRequest, msg: "malformed", want: ErrInvalidPayload},
		{name: "gateway", status: http.StatusBadGateway, msg: "upstream", want: ErrServerFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newReplyingClientSvc(t, tt.status, tt.msg)

			err := svc.SaveProfile(context.Background(), testUserID, models.ProfileSaveRequest{})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ─────────────────────────────────────────────
// UploadPicture
// ─────────────────────────────────────────────

func TestClientProfileService_UploadPicture_SendsFile(t *testing.T) {
	svc, serverAdapter := newTestClientSvc(t)
	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o600))

	serverAdapter.EXPECT().UploadPicture(gomock.Any(), testUserID, "avatar.png", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, content io.Reader) error {
			data, err := io.ReadAll(content)
			assert.NoError(t, err)
			assert.Equal(t, "png-bytes", string(data))
			return nil
		})

	err := svc.UploadPicture(context.Background(), testUserID, path)

	require.NoError(t, err)
}

func TestClientProfileService_UploadPicture_MissingFile(t *testing.T) {
	svc, _ := newTestClientSvc(t)

	err := svc.UploadPicture(context.Background(), testUserID, filepath.Join(t.TempDir(), "nope.png"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOpeningPicture)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestClientProfileService_UploadPicture_Directory(t *testing.T) {
	svc, _ := newTestClientSvc(t)

	err := svc.UploadPicture(context.Background(), testUserID, t.TempDir())

	assert.ErrorIs(t, err, ErrPictureIsFolder)
}

func TestClientProfileService_UploadPicture_NoFileReply(t *testing.T) {
	svc := newReplyingClientSvc(t, http.StatusBadRequest, app.MsgNoFileUploaded)
	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	err := svc.UploadPicture(context.Background(), testUserID, path)

	assert.ErrorIs(t, err, ErrNoPictureProvided)
}

// ─────────────────────────────────────────────
// mapAdapterError
// ─────────────────────────────────────────────

func TestMapAdapterError_PassesThroughUnknown(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	other := errors.New("something else")
	assert.Same(t, other, mapAdapterError(other))
}

func TestClientProfileService_ServerVersion(t *testing.T) {
	svc, serverAdapter := newTestClientSvc(t)

	serverAdapter.EXPECT().GetVersion(gomock.Any()).Return("v1.0.0", nil)

	got, err := svc.ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", got)
}
