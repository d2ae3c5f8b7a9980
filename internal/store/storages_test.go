package store

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestStorages_CloseInReverseOrder(t *testing.T) {
	var order []int
	s := &Storages{closers: []io.Closer{
		closerFunc(func() error { order = append(order, 1); return nil }),
		closerFunc(func() error { order = append(order, 2); return errors.New("boom") }),
	}}

	err := s.Close()
	assert.EqualError(t, err, "boom")
	assert.Equal(t, []int{2, 1}, order)

	// second close is a no-op
	assert.NoError(t, s.Close())
}

func TestStorages_initPictures(t *testing.T) {
	s := &Storages{}
	err := s.initPictures(context.Background(), config.Pictures{
		Backend:    config.PicturesBackendFile,
		Dir:        t.TempDir(),
		PublicPath: "/pictures",
	}, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, s.PictureStorage)
	assert.NotNil(t, s.PicturesHandler)
	assert.Equal(t, "/pictures", s.PicturesPath)

	err = (&Storages{}).initPictures(context.Background(), config.Pictures{Backend: "ftp"}, logger.Nop())
	assert.Error(t, err)
}

func TestNewConnect_UnknownDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
