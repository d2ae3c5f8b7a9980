package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	cloudStorage "cloud.google.com/go/storage"
	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/utils"
	"github.com/MKhiriev/go-profile-editor/models"
	"google.golang.org/api/option"
)

// GoogleCloudStorageBaseURL prefixes the public URL of every stored object.
const GoogleCloudStorageBaseURL = "https://storage.googleapis.com"

// gcsObjects is the slice of the bucket API the storage needs.
type gcsObjects interface {
	NewWriter(ctx context.Context, name, contentType string) io.WriteCloser
	Delete(ctx context.Context, name string) error
}

type gcsBucket struct {
	bucket *cloudStorage.BucketHandle
}

func (b gcsBucket) NewWriter(ctx context.Context, name, contentType string) io.WriteCloser {
	w := b.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType
	return w
}

func (b gcsBucket) Delete(ctx context.Context, name string) error {
	return b.bucket.Object(name).Delete(ctx)
}

// gcsPictureStorage keeps pictures in a Google Cloud Storage bucket under
// "<prefix>/<user>/<uuid><ext>" and references them by public URL.
type gcsPictureStorage struct {
	objects gcsObjects
	client  *cloudStorage.Client
	bucket  string
	prefix  string
	ids     *utils.ObjectIDs
	logger  *logger.Logger
}

func NewGCSPictureStorage(ctx context.Context, cfg config.GCS, log *logger.Logger) (*gcsPictureStorage, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := cloudStorage.NewClient(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewGCSPictureStorage").Msg("cannot connect to cloud storage")
		return nil, fmt.Errorf("cannot connect to cloud storage: %w", err)
	}
	log.Info().Str("func", "NewGCSPictureStorage").Str("bucket", cfg.Bucket).Msg("cloud storage: connected")

	s := newGCSPictureStorage(gcsBucket{bucket: client.Bucket(cfg.Bucket)}, cfg, log)
	s.client = client
	return s, nil
}

func newGCSPictureStorage(objects gcsObjects, cfg config.GCS, log *logger.Logger) *gcsPictureStorage {
	return &gcsPictureStorage{
		objects: objects,
		bucket:  cfg.Bucket,
		prefix:  strings.Trim(cfg.Prefix, "/"),
		ids:     utils.NewObjectIDs(),
		logger:  log,
	}
}

func (s *gcsPictureStorage) Save(ctx context.Context, userID string, picture models.PictureUpload) (string, error) {
	log := logger.FromContext(ctx)

	name := s.objectName(userID, s.ids.Next()+pictureExt(picture.Filename))

	w := s.objects.NewWriter(ctx, name, picture.ContentType)
	if _, err := io.Copy(w, picture.Content); err != nil {
		w.Close()
		log.Err(err).Str("func", "*gcsPictureStorage.Save").Str("object", name).Msg("error copy file")
		return "", fmt.Errorf("%w: %w", ErrStoringPicture, err)
	}
	if err := w.Close(); err != nil {
		log.Err(err).Str("func", "*gcsPictureStorage.Save").Str("object", name).Msg("error finalizing upload")
		return "", fmt.Errorf("%w: %w", ErrStoringPicture, err)
	}

	return s.publicURL(name), nil
}

func (s *gcsPictureStorage) Delete(ctx context.Context, reference string) error {
	base := s.publicURL("")
	if !strings.HasPrefix(reference, base) || reference == base {
		return ErrForeignPicture
	}
	name := strings.TrimPrefix(reference, base)

	err := s.objects.Delete(ctx, name)
	if err != nil && !errors.Is(err, cloudStorage.ErrObjectNotExist) {
		logger.FromContext(ctx).Err(err).
			Str("func", "*gcsPictureStorage.Delete").
			Str("object", name).
			Msg("failed to delete object")
		return fmt.Errorf("%w: %w", ErrDeletingPicture, err)
	}

	return nil
}

// Close releases the underlying client.
func (s *gcsPictureStorage) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *gcsPictureStorage) objectName(userID, file string) string {
	if s.prefix == "" {
		return userID + "/" + file
	}
	return s.prefix + "/" + userID + "/" + file
}

func (s *gcsPictureStorage) publicURL(objectName string) string {
	return GoogleCloudStorageBaseURL + "/" + s.bucket + "/" + objectName
}
