package http

import (
	"net/http"

	"github.com/MKhiriev/go-profile-editor/internal/app"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/service"
	"github.com/MKhiriev/go-profile-editor/internal/utils"
	"github.com/MKhiriev/go-profile-editor/models"
)

// maxPictureMemory is how much of a multipart body is kept in memory; the
// rest is spooled to temporary files by net/http.
const maxPictureMemory = 32 << 20

// uploadPicture accepts a single multipart "file" field. A missing or empty
// file is rejected before the service is called.
func (h *Handler) uploadPicture(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := userIDFromRequest(w, r, "*Handler.uploadPicture")
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxPictureMemory); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.uploadPicture").Msg("request has no multipart form")
		writeError(w, r, "*Handler.uploadPicture", service.ErrNoPictureProvided)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, "*Handler.uploadPicture", service.ErrNoPictureProvided)
		return
	}
	defer file.Close()

	if header.Size == 0 {
		writeError(w, r, "*Handler.uploadPicture", service.ErrNoPictureProvided)
		return
	}

	picture := models.PictureUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}

	reference, err := h.services.UserService.UploadPicture(r.Context(), userID, picture)
	if err != nil {
		writeError(w, r, "*Handler.uploadPicture", err)
		return
	}

	log.Info().Str("func", "*Handler.uploadPicture").Str("user_id", userID).Str("reference", reference).Msg("picture uploaded")
	utils.WriteMessage(w, app.MsgPictureUploaded, http.StatusOK)
}
