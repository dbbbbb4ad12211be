package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	objectivesdomain "squadtab-go/internal/domain/objectives"
	"squadtab-go/internal/transport/httpserver/middleware"
)

type objectiveRequest struct {
	WeeklyBudget float64 `json:"weekly_budget"`
}

func (h *Handlers) GetObjective(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Objectives.ActiveObjective(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("objectives.get: get failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "objective_not_found", "no objective set")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) CreateObjective(w http.ResponseWriter, r *http.Request) {
	var req objectiveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Objectives.CreateObjective(r.Context(), user.ID, req.WeeklyBudget)
	if err != nil {
		if errors.Is(err, objectivesdomain.ErrInvalidBudget) {
			h.log.BusinessError("objectives.create: invalid budget", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", "weekly budget must not be negative")
			return
		}
		h.log.InternalError("objectives.create: create failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handlers) UpdateObjective(w http.ResponseWriter, r *http.Request) {
	var req objectiveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	objectiveID := chi.URLParam(r, "id")
	result, err := h.Objectives.UpdateObjective(r.Context(), user.ID, objectiveID, req.WeeklyBudget)
	if err != nil {
		switch {
		case errors.Is(err, objectivesdomain.ErrObjectiveNotFound):
			h.log.BusinessError("objectives.update: objective not found", err, "user_id", user.ID)
			writeError(w, http.StatusNotFound, "objective_not_found", "objective not found")
		case errors.Is(err, objectivesdomain.ErrNotObjectiveOwner):
			h.log.BusinessError("objectives.update: not owner", err, "user_id", user.ID)
			writeError(w, http.StatusForbidden, "not_objective_owner", "not the objective owner")
		case errors.Is(err, objectivesdomain.ErrInvalidBudget):
			h.log.BusinessError("objectives.update: invalid budget", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", "weekly budget must not be negative")
		default:
			h.log.InternalError("objectives.update: update failed", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
