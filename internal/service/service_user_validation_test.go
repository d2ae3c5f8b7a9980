package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-profile-editor/internal/mock"
	"github.com/MKhiriev/go-profile-editor/internal/validators"
	"github.com/MKhiriev/go-profile-editor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestValidationSvc(t *testing.T) (UserService, *mock.MockUserService) {
	t.Helper()
	inner := mock.NewMockUserService(gomock.NewController(t))
	return NewUserValidationService().Wrap(inner), inner
}

// ─────────────────────────────────────────────
// user id
// ─────────────────────────────────────────────

func TestUserValidationService_InvalidIDShortCircuits(t *testing.T) {
	svc, _ := newTestValidationSvc(t) // no calls expected on inner
	ctx := context.Background()

	for _, id := range []string{"", "abc", "6562c186a4a586c6e19a4eeZ", "6562c186a4a586c6e19a4eef0"} {
		_, err := svc.GetProfile(ctx, id)
		assert.ErrorIs(t, err, validators.ErrInvalidUserID, id)

		_, err = svc.GetPlatforms(ctx, id)
		assert.ErrorIs(t, err, validators.ErrInvalidUserID, id)

		_, err = svc.GetProfilePicture(ctx, id)
		assert.ErrorIs(t, err, validators.ErrInvalidUserID, id)

		assert.ErrorIs(t, svc.UpdateProfile(ctx, id, models.ProfileUpdate{}), validators.ErrInvalidUserID)
		assert.ErrorIs(t, svc.ReplacePlatforms(ctx, id, models.PlatformsRequest{Platforms: []models.Platform{}}), validators.ErrInvalidUserID)
		assert.ErrorIs(t, svc.SaveProfile(ctx, id, models.ProfileSaveRequest{}), validators.ErrInvalidUserID)
	}
}

func TestUserValidationService_NormalizesID(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	inner.EXPECT().GetProfile(ctx, testUserID).Return(models.Profile{Email: "x"}, nil)

	got, err := svc.GetProfile(ctx, strings.ToUpper(testUserID))
	require.NoError(t, err)
	assert.Equal(t, "x", got.Email)
}

// ─────────────────────────────────────────────
// payloads
// ─────────────────────────────────────────────

func TestUserValidationService_ReplacePlatforms(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	err := svc.ReplacePlatforms(ctx, testUserID, models.PlatformsRequest{})
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.ErrorIs(t, err, validators.ErrMissingPlatforms)

	err = svc.ReplacePlatforms(ctx, testUserID, models.PlatformsRequest{Platforms: []models.Platform{{Name: "Github"}}})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	empty := models.PlatformsRequest{Platforms: []models.Platform{}}
	inner.EXPECT().ReplacePlatforms(ctx, testUserID, empty).Return(nil)
	assert.NoError(t, svc.ReplacePlatforms(ctx, testUserID, empty))
}

func TestUserValidationService_SaveProfile(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	bad := models.ProfileSaveRequest{Platforms: []models.Platform{{Value: "v"}}}
	assert.ErrorIs(t, svc.SaveProfile(ctx, testUserID, bad), ErrInvalidPayload)

	good := models.ProfileSaveRequest{
		ProfileUpdate: models.ProfileUpdate{FirstName: strPtr("Jane")},
		Platforms:     []models.Platform{{Name: "Linkedin", Value: "a"}},
	}
	inner.EXPECT().SaveProfile(ctx, testUserID, good).Return(nil)
	assert.NoError(t, svc.SaveProfile(ctx, testUserID, good))
}

func TestUserValidationService_UploadPicture(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	// an empty file wins over a malformed id
	_, err := svc.UploadPicture(ctx, "bad", models.PictureUpload{})
	assert.ErrorIs(t, err, ErrNoPictureProvided)

	_, err = svc.UploadPicture(ctx, "bad", testPicture())
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)

	pic := testPicture()
	inner.EXPECT().UploadPicture(ctx, testUserID, pic).Return("/pictures/p.png", nil)
	ref, err := svc.UploadPicture(ctx, testUserID, pic)
	require.NoError(t, err)
	assert.Equal(t, "/pictures/p.png", ref)
}
