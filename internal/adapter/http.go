package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/utils"
	"github.com/MKhiriev/go-profile-editor/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, the
// request timeout and the outbound rate limit.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithRateLimit(adapterCfg.RateLimit)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetProfile implements [ServerAdapter]. GET /users/{id}.
func (h *httpServerAdapter) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.userRequest(ctx, userID).Get("/users/{id}")
	if err != nil {
		return profile, fmt.Errorf("%w: get profile: %w", ErrSendingRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return profile, err
	}

	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return profile, fmt.Errorf("%w: profile: %w", ErrDecodingReply, err)
	}
	return profile, nil
}

// UpdateProfile implements [ServerAdapter]. PUT /users/{id}.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) error {
	resp, err := h.userRequest(ctx, userID).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/users/{id}")
	if err != nil {
		return fmt.Errorf("%w: update profile: %w", ErrSendingRequest, err)
	}

	return mapHTTPError(resp)
}

// GetPlatforms implements [ServerAdapter]. GET /users/{id}/platforms.
func (h *httpServerAdapter) GetPlatforms(ctx context.Context, userID string) ([]models.Platform, error) {
	resp, err := h.userRequest(ctx, userID).Get("/users/{id}/platforms")
	if err != nil {
		return nil, fmt.Errorf("%w: get platforms: %w", ErrSendingRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	platforms := make([]models.Platform, 0)
	if err = json.Unmarshal(resp.Body(), &platforms); err != nil {
		return nil, fmt.Errorf("%w: platforms: %w", ErrDecodingReply, err)
	}
	if platforms == nil {
		platforms = []models.Platform{}
	}
	return platforms, nil
}

// ReplacePlatforms implements [ServerAdapter]. PUT /users/{id}/platforms.
func (h *httpServerAdapter) ReplacePlatforms(ctx context.Context, userID string, platforms []models.Platform) error {
	if platforms == nil {
		platforms = []models.Platform{}
	}

	resp, err := h.userRequest(ctx, userID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PlatformsRequest{Platforms: platforms}).
		Put("/users/{id}/platforms")
	if err != nil {
		return fmt.Errorf("%w: replace platforms: %w", ErrSendingRequest, err)
	}

	return mapHTTPError(resp)
}

// SaveProfile implements [ServerAdapter]. PUT /users/{id}/profile.
func (h *httpServerAdapter) SaveProfile(ctx context.Context, userID string, req models.ProfileSaveRequest) error {
	resp, err := h.userRequest(ctx, userID).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/users/{id}/profile")
	if err != nil {
		return fmt.Errorf("%w: save profile: %w", ErrSendingRequest, err)
	}

	return mapHTTPError(resp)
}

// GetProfilePicture implements [ServerAdapter]. GET /users/{id}/profilePicture.
func (h *httpServerAdapter) GetProfilePicture(ctx context.Context, userID string) (string, error) {
	var picture models.ProfilePictureResponse

	resp, err := h.userRequest(ctx, userID).Get("/users/{id}/profilePicture")
	if err != nil {
		return "", fmt.Errorf("%w: get profile picture: %w", ErrSendingRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if err = json.Unmarshal(resp.Body(), &picture); err != nil {
		return "", fmt.Errorf("%w: profile picture: %w", ErrDecodingReply, err)
	}
	return picture.ProfilePicture, nil
}

// UploadPicture implements [ServerAdapter]. PUT /users/{id}/uploadPicture
// with a single multipart "file" field.
func (h *httpServerAdapter) UploadPicture(ctx context.Context, userID string, filename string, content io.Reader) error {
	resp, err := h.userRequest(ctx, userID).
		SetFileReader("file", filename, content).
		Put("/users/{id}/uploadPicture")
	if err != nil {
		return fmt.Errorf("%w: upload picture: %w", ErrSendingRequest, err)
	}

	return mapHTTPError(resp)
}

// GetVersion implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("%w: get version: %w", ErrSendingRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) userRequest(ctx context.Context, userID string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetPathParam("id", userID)
}
