package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/ratelimit"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with a default-configured
// underlying resty.Client. Each call returns an independent client.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithRateLimit makes every outbound request wait for a slot of a limiter
// allowing rps requests per second. rps <= 0 leaves the client unlimited.
func (c *HTTPClient) WithRateLimit(rps int) *HTTPClient {
	if rps <= 0 {
		return c
	}

	c.SetTransport(NewRateLimitTransport(http.DefaultTransport, rps))
	return c
}

// RateLimitTransport is an [http.RoundTripper] that blocks each request until
// the limiter lets it through.
type RateLimitTransport struct {
	next    http.RoundTripper
	limiter ratelimit.Limiter
}

// NewRateLimitTransport wraps next with a limiter of rps requests per second.
func NewRateLimitTransport(next http.RoundTripper, rps int) *RateLimitTransport {
	if next == nil {
		next = http.DefaultTransport
	}

	return &RateLimitTransport{
		next:    next,
		limiter: ratelimit.New(rps),
	}
}

// RoundTrip implements [http.RoundTripper].
func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.limiter.Take()
	return t.next.RoundTrip(req)
}
