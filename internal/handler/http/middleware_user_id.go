package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-profile-editor/internal/utils"
	"github.com/go-chi/chi/v5"
)

// withUserID stores the raw {id} path parameter in the request context under
// [utils.UserIDCtxKey]. The id is validated later by the service.
func withUserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, chi.URLParam(r, "id"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromRequest returns the id stored by withUserID. On a miss it answers
// with an error itself and reports false.
func userIDFromRequest(w http.ResponseWriter, r *http.Request, fn string) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, fn, ErrNoUserIDInContext)
	}
	return userID, ok
}
