package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/utils"
	"github.com/MKhiriev/go-profile-editor/models"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// cloudinaryUploader is the part of the Cloudinary upload API the storage uses.
type cloudinaryUploader interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// cloudinaryPictureStorage uploads pictures to Cloudinary and references
// them by their secure delivery URL.
type cloudinaryPictureStorage struct {
	api       cloudinaryUploader
	cloudName string
	folder    string
	ids       *utils.ObjectIDs
	logger    *logger.Logger
}

func NewCloudinaryPictureStorage(cfg config.Cloudinary, log *logger.Logger) (PictureStorage, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		log.Err(err).Str("func", "NewCloudinaryPictureStorage").Msg("cannot init cloudinary")
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}
	log.Info().Str("func", "NewCloudinaryPictureStorage").Str("cloud", cfg.CloudName).Msg("cloudinary picture storage ready")

	return newCloudinaryPictureStorage(&cld.Upload, cfg, log), nil
}

func newCloudinaryPictureStorage(api cloudinaryUploader, cfg config.Cloudinary, log *logger.Logger) *cloudinaryPictureStorage {
	return &cloudinaryPictureStorage{
		api:       api,
		cloudName: cfg.CloudName,
		folder:    strings.Trim(cfg.Folder, "/"),
		ids:       utils.NewObjectIDs(),
		logger:    log,
	}
}

func (s *cloudinaryPictureStorage) Save(ctx context.Context, userID string, picture models.PictureUpload) (string, error) {
	log := logger.FromContext(ctx)

	params := uploader.UploadParams{
		PublicID: s.ids.Next(),
		Folder:   path.Join(s.folder, userID),
	}
	result, err := s.api.Upload(ctx, picture.Content, params)
	if err == nil && result.Error.Message != "" {
		err = errors.New(result.Error.Message)
	}
	if err != nil {
		log.Err(err).Str("func", "*cloudinaryPictureStorage.Save").Str("user_id", userID).Msg("failed to upload to cloudinary")
		return "", fmt.Errorf("%w: %w", ErrStoringPicture, err)
	}

	return result.SecureURL, nil
}

func (s *cloudinaryPictureStorage) Delete(ctx context.Context, reference string) error {
	publicID, ok := s.publicID(reference)
	if !ok {
		return ErrForeignPicture
	}

	result, err := s.api.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err == nil && result.Error.Message != "" {
		err = errors.New(result.Error.Message)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*cloudinaryPictureStorage.Delete").
			Str("public_id", publicID).
			Msg("failed to delete from cloudinary")
		return fmt.Errorf("%w: %w", ErrDeletingPicture, err)
	}

	return nil
}

var cloudinaryVersionSegment = regexp.MustCompile(`^v\d+$`)

// publicID extracts the public id from a delivery URL of the form
// https://res.cloudinary.com/<cloud>/image/upload/v123/<folder>/<id>.<ext>.
func (s *cloudinaryPictureStorage) publicID(reference string) (string, bool) {
	u, err := url.Parse(reference)
	if err != nil || !strings.HasSuffix(u.Host, "cloudinary.com") {
		return "", false
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 4 || segments[0] != s.cloudName || segments[2] != "upload" {
		return "", false
	}

	rest := segments[3:]
	if len(rest) > 1 && cloudinaryVersionSegment.MatchString(rest[0]) {
		rest = rest[1:]
	}

	id := strings.Join(rest, "/")
	id = strings.TrimSuffix(id, path.Ext(id))
	if id == "" {
		return "", false
	}
	return id, true
}
