package utils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestWithRateLimit_ZeroKeepsDefaultTransport(t *testing.T) {
	client := NewHTTPClient()
	before := client.GetClient().Transport

	client.WithRateLimit(0)

	assert.Equal(t, before, client.GetClient().Transport)
}

func TestWithRateLimit_InstallsTransport(t *testing.T) {
	client := NewHTTPClient().WithRateLimit(100)

	_, ok := client.GetClient().Transport.(*RateLimitTransport)
	assert.True(t, ok)
}

func TestRateLimitTransport_ForwardsRequests(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient().WithRateLimit(1000)
	for i := 0; i < 3; i++ {
		resp, err := client.R().Get(srv.URL)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	}

	assert.Equal(t, int32(3), hits.Load())
}
