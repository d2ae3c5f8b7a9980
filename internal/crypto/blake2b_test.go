package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestBlake2bDigester_Digest(t *testing.T) {
	d := NewBlake2bDigester()

	var dst bytes.Buffer
	sum, n, err := d.Digest(&dst, strings.NewReader("picture bytes"))
	require.NoError(t, err)

	assert.Equal(t, int64(len("picture bytes")), n)
	assert.Equal(t, "picture bytes", dst.String())
	assert.Len(t, sum, 64)

	// same content, same name
	again, _, err := d.Digest(&bytes.Buffer{}, strings.NewReader("picture bytes"))
	require.NoError(t, err)
	assert.Equal(t, sum, again)

	other, _, err := d.Digest(&bytes.Buffer{}, strings.NewReader("other bytes"))
	require.NoError(t, err)
	assert.NotEqual(t, sum, other)
}

func TestBlake2bDigester_ReadError(t *testing.T) {
	_, _, err := NewBlake2bDigester().Digest(&bytes.Buffer{}, failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
