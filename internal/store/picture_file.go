package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-profile-editor/internal/crypto"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/models"
)

// filePictureStorage keeps pictures in a local directory, one subdirectory
// per user. File names are the BLAKE2b sum of the content, so uploading the
// same picture twice yields the same reference.
type filePictureStorage struct {
	dir        string
	publicPath string
	digester   crypto.Digester
	logger     *logger.Logger
}

// NewFilePictureStorage creates dir if needed and returns a storage whose
// references are URL paths under publicPath, e.g. "/pictures/<user>/<sum>.png".
func NewFilePictureStorage(dir, publicPath string, log *logger.Logger) (*filePictureStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Err(err).Str("func", "NewFilePictureStorage").Str("dir", dir).Msg("cannot create pictures directory")
		return nil, fmt.Errorf("create pictures directory: %w", err)
	}

	return &filePictureStorage{
		dir:        dir,
		publicPath: "/" + strings.Trim(publicPath, "/"),
		digester:   crypto.NewBlake2bDigester(),
		logger:     log,
	}, nil
}

func (s *filePictureStorage) Save(ctx context.Context, userID string, picture models.PictureUpload) (string, error) {
	log := logger.FromContext(ctx)

	userDir := filepath.Join(s.dir, userID)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		log.Err(err).Str("func", "*filePictureStorage.Save").Str("user_id", userID).Msg("cannot create user directory")
		return "", fmt.Errorf("%w: %w", ErrStoringPicture, err)
	}

	tmp, err := os.CreateTemp(userDir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*filePictureStorage.Save").Str("user_id", userID).Msg("cannot create temp file")
		return "", fmt.Errorf("%w: %w", ErrStoringPicture, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	sum, written, err := s.digester.Digest(tmp, picture.Content)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Err(err).Str("func", "*filePictureStorage.Save").Str("user_id", userID).Msg("cannot write picture")
		return "", fmt.Errorf("%w: %w", ErrStoringPicture, err)
	}

	name := sum + pictureExt(picture.Filename)
	if err = os.Rename(tmp.Name(), filepath.Join(userDir, name)); err != nil {
		log.Err(err).Str("func", "*filePictureStorage.Save").Str("user_id", userID).Msg("cannot move picture in place")
		return "", fmt.Errorf("%w: %w", ErrStoringPicture, err)
	}

	log.Debug().
		Str("func", "*filePictureStorage.Save").
		Str("user_id", userID).
		Int64("size", written).
		Str("name", name).
		Msg("picture stored")

	return path.Join(s.publicPath, userID, name), nil
}

func (s *filePictureStorage) Delete(ctx context.Context, reference string) error {
	rel, ok := s.relativePath(reference)
	if !ok {
		return ErrForeignPicture
	}

	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(rel)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).
			Str("func", "*filePictureStorage.Delete").
			Str("reference", reference).
			Msg("cannot remove picture")
		return fmt.Errorf("%w: %w", ErrDeletingPicture, err)
	}

	return nil
}

// Handler serves stored pictures. It is meant to be mounted at the public
// path, which it strips itself.
func (s *filePictureStorage) Handler() http.Handler {
	return http.StripPrefix(s.publicPath, http.FileServer(http.Dir(s.dir)))
}

// PublicPath returns the URL prefix of the references.
func (s *filePictureStorage) PublicPath() string {
	return s.publicPath
}

// relativePath maps a reference back to "<user>/<name>". References
// outside the public path or escaping it are rejected.
func (s *filePictureStorage) relativePath(reference string) (string, bool) {
	prefix := s.publicPath + "/"
	if !strings.HasPrefix(reference, prefix) {
		return "", false
	}

	rel := path.Clean(strings.TrimPrefix(reference, prefix))
	if rel == "." || strings.HasPrefix(rel, "..") || path.IsAbs(rel) {
		return "", false
	}
	if strings.Count(rel, "/") != 1 {
		return "", false
	}

	return rel, true
}

// pictureExt returns the lower-cased extension of the uploaded file name.
func pictureExt(filename string) string {
	ext := strings.ToLower(path.Ext(filepath.ToSlash(filename)))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return ext
}
