package handler

import (
	"net/http"

	"squadtab-go/internal/transport/httpserver/middleware"
)

func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Users.Search(r.Context(), r.URL.Query().Get("q"), user.ID)
	if err != nil {
		h.log.InternalError("users.search: search failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
