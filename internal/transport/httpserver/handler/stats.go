package handler

import (
	"net/http"

	statsdomain "squadtab-go/internal/domain/stats"
	"squadtab-go/internal/transport/httpserver/middleware"
)

func (h *Handlers) StatsMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Stats.UserSnapshot(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("stats.me: snapshot failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) WeeklyStats(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Stats.WeeklyStats(r.Context(), user.ID, r.URL.Query().Get("group_id"))
	if err != nil {
		h.log.InternalError("stats.weekly: stats failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) Badges(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	snapshot, err := h.Stats.UserSnapshot(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("badges.list: snapshot failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	hasObjective, err := h.Objectives.HasActive(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("badges.list: objective lookup failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	if r.URL.Query().Get("grouped") == "true" {
		grouped := statsdomain.BadgesByCategory(snapshot, hasObjective)
		payload := make(map[string][]statsdomain.Badge, len(grouped))
		for category, badges := range grouped {
			payload[string(category)] = badges
		}
		writeJSON(w, http.StatusOK, payload)
		return
	}

	if r.URL.Query().Get("unlocked") == "true" {
		writeJSON(w, http.StatusOK, statsdomain.UnlockedBadges(snapshot, hasObjective))
		return
	}

	writeJSON(w, http.StatusOK, statsdomain.UserBadges(snapshot, hasObjective))
}
