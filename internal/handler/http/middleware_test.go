package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-profile-editor/internal/app"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/service"
	"github.com/MKhiriev/go-profile-editor/internal/store"
	"github.com/MKhiriev/go-profile-editor/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── withGZip ───

func TestWithGZip_CompressesJSON(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"ok"}`, string(body))
}

func TestWithGZip_LeavesPicturesAlone(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestWithGZip_NoAcceptEncoding(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, `{}`, rec.Body.String())
}

func TestWithGZip_InflatesRequestBody(t *testing.T) {
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(`{"first_name":"Ada"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var got string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	}))

	req := httptest.NewRequest(http.MethodPut, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"first_name":"Ada"}`, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIsCompressible(t *testing.T) {
	assert.True(t, isCompressible("application/json"))
	assert.True(t, isCompressible("text/plain; charset=utf-8"))
	assert.False(t, isCompressible("image/jpeg"))
	assert.False(t, isCompressible(""))
}

// ─── responseWriter ───

func TestResponseWriter_DefaultsToOK(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Equal(t, http.StatusOK, rw.Status())

	n, err := rw.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, rw.size)
	assert.Equal(t, http.StatusOK, rw.Status())
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusTeapot, rw.Status())
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Same(t, rec, rw.Unwrap())
}

// ─── withLogging ───

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	svcs := &service.Services{
		UserService:    service.NewUserValidationService().Wrap(&fakeUserService{}),
		AppInfoService: &mockAppInfoService{version: "v1"},
	}
	router := NewHandler(svcs, logger.NewWithWriter(&buf, "server")).Init()

	req := httptest.NewRequest(http.MethodGet, "/users/"+testUserID+"/platforms", nil)
	req.Header.Set(traceIDHeader, "abc")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var access map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if _, ok := entry["route"]; ok {
			access = entry
		}
	}
	require.NotNil(t, access, buf.String())
	assert.Equal(t, "/users/{id}/platforms", access["route"])
	assert.Equal(t, http.MethodGet, access["method"])
	assert.Equal(t, float64(http.StatusOK), access["status"])
	assert.Equal(t, "abc", access["trace_id"])
}

func TestRoutePattern_Unmatched(t *testing.T) {
	assert.Equal(t, "unmatched", routePattern(httptest.NewRequest(http.MethodGet, "/", nil)))
}

// ─── errors mapper ───

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "invalid user id",
			err:        fmt.Errorf("%w: %q", validators.ErrInvalidUserID, "x"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInvalidUserID,
		},
		{
			name:       "user not found",
			err:        fmt.Errorf("get profile: %w", store.ErrUserNotFound),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgUserNotFound,
		},
		{
			name:       "invalid payload",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidPayload, ErrDecodingBody),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInvalidPayload,
		},
		{
			name:       "no picture",
			err:        service.ErrNoPictureProvided,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgNoFileUploaded,
		},
		{
			name:       "anything else",
			err:        errors.New("disk full"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
			assert.Equal(t, tt.wantMsg, messageFromError(tt.err))

			rec := httptest.NewRecorder()
			writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), "test", tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantMsg), rec.Body.String())
		})
	}
}
