package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	drinksdomain "squadtab-go/internal/domain/drinks"
	"squadtab-go/internal/transport/httpserver/middleware"
)

type drinkRequest struct {
	GroupID  *string `json:"group_id"`
	Type     string  `json:"type"`
	Cost     float64 `json:"cost"`
	Date     string  `json:"date"`
	Location string  `json:"location"`
}

func (h *Handlers) ListDrinks(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	limit, err := parseIntParam(r.URL.Query().Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid limit")
		return
	}

	result, err := h.Drinks.ListDrinks(r.Context(), user.ID, drinksdomain.ListFilter{
		From:  r.URL.Query().Get("from"),
		To:    r.URL.Query().Get("to"),
		Limit: limit,
	})
	if err != nil {
		h.log.InternalError("drinks.list: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) WeeklyDrinks(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Drinks.WeeklyDrinks(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("drinks.weekly: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) RecentDrinks(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	limit, err := parseIntParam(r.URL.Query().Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid limit")
		return
	}

	result, err := h.Drinks.RecentDrinks(r.Context(), user.ID, limit)
	if err != nil {
		h.log.InternalError("drinks.recent: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) CreateDrink(w http.ResponseWriter, r *http.Request) {
	var req drinkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Drinks.CreateDrink(r.Context(), drinksdomain.CreateDrinkInput{
		UserID:   user.ID,
		GroupID:  req.GroupID,
		Type:     req.Type,
		Cost:     req.Cost,
		Date:     req.Date,
		Location: req.Location,
	})
	if err != nil {
		if isDrinkValidationError(err) {
			h.log.BusinessError("drinks.create: invalid input", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("drinks.create: create failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handlers) UpdateDrink(w http.ResponseWriter, r *http.Request) {
	var req drinkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Drinks.UpdateDrink(r.Context(), drinksdomain.UpdateDrinkInput{
		ID:       chi.URLParam(r, "id"),
		UserID:   user.ID,
		Type:     req.Type,
		Cost:     req.Cost,
		Date:     req.Date,
		Location: req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, drinksdomain.ErrDrinkNotFound):
			h.log.BusinessError("drinks.update: drink not found", err, "user_id", user.ID)
			writeError(w, http.StatusNotFound, "drink_not_found", "drink not found")
		case errors.Is(err, drinksdomain.ErrNotDrinkOwner):
			h.log.BusinessError("drinks.update: not owner", err, "user_id", user.ID)
			writeError(w, http.StatusForbidden, "not_drink_owner", "not the drink owner")
		case isDrinkValidationError(err):
			h.log.BusinessError("drinks.update: invalid input", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("drinks.update: update failed", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) DeleteDrink(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	err := h.Drinks.DeleteDrink(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, drinksdomain.ErrDrinkNotFound):
			h.log.BusinessError("drinks.delete: drink not found", err, "user_id", user.ID)
			writeError(w, http.StatusNotFound, "drink_not_found", "drink not found")
		case errors.Is(err, drinksdomain.ErrNotDrinkOwner):
			h.log.BusinessError("drinks.delete: not owner", err, "user_id", user.ID)
			writeError(w, http.StatusForbidden, "not_drink_owner", "not the drink owner")
		default:
			h.log.InternalError("drinks.delete: delete failed", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isDrinkValidationError(err error) bool {
	return errors.Is(err, drinksdomain.ErrInvalidType) ||
		errors.Is(err, drinksdomain.ErrInvalidCost) ||
		errors.Is(err, drinksdomain.ErrInvalidDate)
}
