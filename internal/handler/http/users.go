package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-profile-editor/internal/app"
	"github.com/MKhiriev/go-profile-editor/internal/service"
	"github.com/MKhiriev/go-profile-editor/internal/utils"
	"github.com/MKhiriev/go-profile-editor/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.getProfile")
	if !ok {
		return
	}

	profile, err := h.services.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getProfile", err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.updateProfile")
	if !ok {
		return
	}

	var update models.ProfileUpdate
	if err := decodeBody(r, &update); err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	if err := h.services.UserService.UpdateProfile(r.Context(), userID, update); err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	utils.WriteMessage(w, app.MsgProfileUpdated, http.StatusOK)
}

func (h *Handler) getPlatforms(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.getPlatforms")
	if !ok {
		return
	}

	platforms, err := h.services.UserService.GetPlatforms(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getPlatforms", err)
		return
	}
	if platforms == nil {
		platforms = []models.Platform{}
	}

	utils.WriteJSON(w, platforms, http.StatusOK)
}

func (h *Handler) replacePlatforms(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.replacePlatforms")
	if !ok {
		return
	}

	var req models.PlatformsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.replacePlatforms", err)
		return
	}

	if err := h.services.UserService.ReplacePlatforms(r.Context(), userID, req); err != nil {
		writeError(w, r, "*Handler.replacePlatforms", err)
		return
	}

	utils.WriteMessage(w, app.MsgPlatformsUpdated, http.StatusOK)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.saveProfile")
	if !ok {
		return
	}

	var req models.ProfileSaveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.saveProfile", err)
		return
	}

	if err := h.services.UserService.SaveProfile(r.Context(), userID, req); err != nil {
		writeError(w, r, "*Handler.saveProfile", err)
		return
	}

	utils.WriteMessage(w, app.MsgProfileSaved, http.StatusOK)
}

func (h *Handler) getProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.getProfilePicture")
	if !ok {
		return
	}

	picture, err := h.services.UserService.GetProfilePicture(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getProfilePicture", err)
		return
	}

	utils.WriteJSON(w, models.ProfilePictureResponse{ProfilePicture: picture}, http.StatusOK)
}

// decodeBody decodes a JSON body into v. Unknown keys are ignored; a field of
// the wrong JSON type fails the decoding.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w: %w", service.ErrInvalidPayload, ErrDecodingBody, err)
	}
	return nil
}
