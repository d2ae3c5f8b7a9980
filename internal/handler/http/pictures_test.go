package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-profile-editor/internal/app"
	"github.com/MKhiriev/go-profile-editor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartBody builds a form with one field; a nil content leaves it out.
func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	if content != nil {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func uploadRequest(router http.Handler, userID string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/users/"+userID+"/uploadPicture", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUploadPicture_Success(t *testing.T) {
	var got models.PictureUpload
	var gotContent []byte
	base := &fakeUserService{
		uploadPictureFn: func(_ context.Context, userID string, picture models.PictureUpload) (string, error) {
			assert.Equal(t, testUserID, userID)
			got = picture
			gotContent, _ = io.ReadAll(picture.Content)
			return "/pictures/" + userID + "/abc.png", nil
		},
	}
	router := newTestRouter(t, base)
	body, contentType := multipartBody(t, "file", "me.png", []byte("\x89PNG fake"))

	rec := uploadRequest(router, testUserID, body, contentType)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgPictureUploaded, decodeMessage(t, rec.Body.String()))
	assert.Equal(t, "me.png", got.Filename)
	assert.Equal(t, int64(len("\x89PNG fake")), got.Size)
	assert.Equal(t, []byte("\x89PNG fake"), gotContent)
}

func TestUploadPicture_NoFile(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		content     []byte
		contentType string
	}{
		{name: "empty file", field: "file", content: []byte{}},
		{name: "missing file field", field: "file", content: nil},
		{name: "wrong field name", field: "picture", content: []byte("png")},
		{name: "not multipart", contentType: "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			base := &fakeUserService{
				uploadPictureFn: func(context.Context, string, models.PictureUpload) (string, error) {
					called = true
					return "", nil
				},
			}
			router := newTestRouter(t, base)

			var body io.Reader = bytes.NewBufferString(`{}`)
			contentType := tt.contentType
			if contentType == "" {
				body, contentType = multipartBody(t, tt.field, "me.png", tt.content)
			}

			rec := uploadRequest(router, testUserID, body, contentType)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, app.MsgNoFileUploaded, decodeError(t, rec.Body.String()))
			assert.False(t, called)
		})
	}
}

func TestUploadPicture_InvalidUserID(t *testing.T) {
	router := newTestRouter(t, &fakeUserService{})
	body, contentType := multipartBody(t, "file", "me.png", []byte("png"))

	rec := uploadRequest(router, "not-an-id", body, contentType)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInvalidUserID, decodeError(t, rec.Body.String()))
}

func TestUploadPicture_StorageFailure(t *testing.T) {
	base := &fakeUserService{
		uploadPictureFn: func(context.Context, string, models.PictureUpload) (string, error) {
			return "", errors.New("bucket unavailable")
		},
	}
	router := newTestRouter(t, base)
	body, contentType := multipartBody(t, "file", "me.png", []byte("png"))

	rec := uploadRequest(router, testUserID, body, contentType)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeError(t, rec.Body.String()))
}
