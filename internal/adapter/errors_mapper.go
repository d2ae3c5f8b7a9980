package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-profile-editor/models"
	"github.com/go-resty/resty/v2"
)

// httpError keeps the sentinel for errors.Is and the server's message text.
type httpError struct {
	kind    error
	status  int
	message string
}

func (e *httpError) Error() string {
	if e.message == "" {
		return e.kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

func (e *httpError) Unwrap() error {
	return e.kind
}

// ServerMessage returns the {"error": ...} text carried by an adapter error,
// or an empty string if err did not come from a server reply.
func ServerMessage(err error) string {
	var he *httpError
	if errors.As(err, &he) {
		return he.message
	}
	return ""
}

// StatusCode returns the HTTP status carried by an adapter error, or 0.
func StatusCode(err error) int {
	var he *httpError
	if errors.As(err, &he) {
		return he.status
	}
	return 0
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	he := &httpError{status: resp.StatusCode(), message: errorMessage(resp.Body())}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		he.kind = ErrBadRequest
	case http.StatusNotFound:
		he.kind = ErrNotFound
	case http.StatusMethodNotAllowed:
		he.kind = ErrMethodNotAllowed
	case http.StatusBadGateway:
		he.kind = ErrBadGateway
	case http.StatusServiceUnavailable:
		he.kind = ErrServiceUnavailable
	case http.StatusInternalServerError:
		he.kind = ErrInternalServerError
	default:
		he.kind = fmt.Errorf("%w: http %d", ErrUnexpectedStatus, resp.StatusCode())
		if he.message == "" {
			he.message = http.StatusText(resp.StatusCode())
		}
	}

	return he
}

// errorMessage extracts the "error" field of a JSON body, falling back to the
// raw trimmed body for non-JSON replies (e.g. chi's plain-text 404).
func errorMessage(body []byte) string {
	var reply models.ErrorResponse
	if err := json.Unmarshal(body, &reply); err == nil && reply.Error != "" {
		return reply.Error
	}
	return strings.TrimSpace(string(body))
}
