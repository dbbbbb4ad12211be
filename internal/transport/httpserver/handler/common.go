package handler

import (
	"errors"
	"net/http"

	userdomain "squadtab-go/internal/domain/user"
	"squadtab-go/internal/transport/httpserver/middleware"
)

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	profile, err := h.Users.GetProfile(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, userdomain.ErrProfileNotFound) {
			writeJSON(w, http.StatusOK, map[string]string{
				"user_id":  user.ID,
				"email":    user.Email,
				"username": user.Username,
			})
			return
		}
		h.log.InternalError("auth.me: get profile failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
