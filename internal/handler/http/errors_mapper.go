package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-profile-editor/internal/app"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/service"
	"github.com/MKhiriev/go-profile-editor/internal/store"
	"github.com/MKhiriev/go-profile-editor/internal/utils"
	"github.com/MKhiriev/go-profile-editor/internal/validators"
)

// errorStatusMap lists the errors answered with something other than 500.
var errorStatusMap = map[error]int{
	service.ErrNoPictureProvided: http.StatusBadRequest,
}

// errorMessageMap gives each error kind its own {"error"} text. Everything
// else is reported as app.MsgInternalServerError.
var errorMessageMap = map[error]string{
	validators.ErrInvalidUserID:  app.MsgInvalidUserID,
	store.ErrUserNotFound:        app.MsgUserNotFound,
	service.ErrInvalidPayload:    app.MsgInvalidPayload,
	service.ErrNoPictureProvided: app.MsgNoFileUploaded,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err with the request logger and answers with the mapped
// status and an {"error"} body.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	msg := messageFromError(err)

	event := logger.FromRequest(r).Warn()
	if status == http.StatusInternalServerError && msg == app.MsgInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg(msg)

	utils.WriteError(w, msg, status)
}
