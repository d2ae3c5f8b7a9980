package http

import (
	"net/http"

	"github.com/MKhiriev/go-profile-editor/internal/logger"
)

// getVersion answers GET /api/version with the bare version string. The
// editor probes it at startup to check the server is reachable.
func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())
	if version == "" {
		version = "unknown"
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getVersion").Msg("writing version reply failed")
	}
}
