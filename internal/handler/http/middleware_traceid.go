package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-profile-editor/internal/utils"
)

const (
	traceIDHeader = "X-Trace-ID"
	// maxTraceIDLen bounds what a caller can make us log and publish.
	maxTraceIDLen = 64
)

// withTraceID tags the request with a trace id, reusing the caller's
// X-Trace-ID when it is sane. The id reaches the access log, every service
// log line through the request logger, and published profile events.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := utils.WithTraceID(l.WithContext(r.Context()), traceID)
		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
