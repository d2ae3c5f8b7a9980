package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-profile-editor/models"
	"github.com/stretchr/testify/assert"
)

const validUserID = "6562c186a4a586c6e19a4eef"

func TestValidate_UserID(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "valid lowercase", id: validUserID},
		{name: "valid uppercase", id: strings.ToUpper(validUserID)},
		{name: "invalid characters", id: "0_invalid_user_id_0", wantErr: ErrInvalidUserID},
		{name: "too short", id: "6562c186a4a586c6e19a4ee", wantErr: ErrInvalidUserID},
		{name: "too long", id: validUserID + "0", wantErr: ErrInvalidUserID},
		{name: "empty", id: "", wantErr: ErrInvalidUserID},
		{name: "not hex", id: "zzzzzzzzzzzzzzzzzzzzzzzz", wantErr: ErrInvalidUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.id, FieldUserID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_StringWithoutFieldIsRejected(t *testing.T) {
	err := NewUserValidator().Validate(context.Background(), validUserID)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewUserValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_PlatformsRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.PlatformsRequest
		wantErr error
	}{
		{
			name: "well formed",
			req:  models.PlatformsRequest{Platforms: []models.Platform{{Name: "Linkedin", Value: "a"}}},
		},
		{
			name: "empty list clears",
			req:  models.PlatformsRequest{Platforms: []models.Platform{}},
		},
		{
			name:    "missing list",
			req:     models.PlatformsRequest{},
			wantErr: ErrMissingPlatforms,
		},
		{
			name:    "entry without name",
			req:     models.PlatformsRequest{Platforms: []models.Platform{{Value: "a"}}},
			wantErr: ErrInvalidPlatform,
		},
		{
			name:    "entry without value",
			req:     models.PlatformsRequest{Platforms: []models.Platform{{Name: "Github"}}},
			wantErr: ErrInvalidPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ProfileSaveRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ProfileSaveRequest{}), "platforms are optional")
	assert.ErrorIs(t, v.Validate(ctx, models.ProfileSaveRequest{
		Platforms: []models.Platform{{Name: "Github", Value: "x"}, {Name: "", Value: "y"}},
	}), ErrInvalidPlatform)
}

func TestValidate_Picture(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PictureUpload{Size: 3, Content: strings.NewReader("abc")}))
	assert.ErrorIs(t, v.Validate(ctx, models.PictureUpload{Size: 0, Content: strings.NewReader("")}), ErrEmptyPicture)
	assert.ErrorIs(t, v.Validate(ctx, &models.PictureUpload{Size: 10}), ErrEmptyPicture)
}

func TestNormalizeUserID(t *testing.T) {
	assert.Equal(t, validUserID, NormalizeUserID(strings.ToUpper(validUserID)))
}
