package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	groupsdomain "squadtab-go/internal/domain/groups"
	"squadtab-go/internal/transport/httpserver/middleware"
)

type createGroupRequest struct {
	Name         string  `json:"name"`
	WeeklyBudget float64 `json:"weekly_budget"`
}

type updateBudgetRequest struct {
	WeeklyBudget float64 `json:"weekly_budget"`
}

type inviteMemberRequest struct {
	UserID string `json:"user_id"`
}

func (h *Handlers) ListGroups(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Groups.ListForUser(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("groups.list: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Groups.Create(r.Context(), user.ID, req.Name, req.WeeklyBudget)
	if err != nil {
		if errors.Is(err, groupsdomain.ErrInvalidBudget) {
			h.log.BusinessError("groups.create: invalid budget", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", "weekly budget must not be negative")
			return
		}
		h.log.InternalError("groups.create: create failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handlers) GetGroup(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	groupID := chi.URLParam(r, "id")
	result, err := h.Groups.GetGroup(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, groupsdomain.ErrGroupNotFound) {
			h.log.BusinessError("groups.get: group not found", err, "user_id", user.ID, "group_id", groupID)
			writeError(w, http.StatusNotFound, "group_not_found", "group not found")
			return
		}
		h.log.InternalError("groups.get: get failed", err, "user_id", user.ID, "group_id", groupID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	groupID := chi.URLParam(r, "id")
	if err := h.Groups.Delete(r.Context(), user.ID, groupID); err != nil {
		h.writeGroupError(w, "groups.delete", err, user.ID, groupID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) JoinGroup(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	groupID := chi.URLParam(r, "id")
	if err := h.Groups.Join(r.Context(), user.ID, groupID); err != nil {
		h.writeGroupError(w, "groups.join", err, user.ID, groupID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	groupID := chi.URLParam(r, "id")
	if err := h.Groups.Leave(r.Context(), user.ID, groupID); err != nil {
		h.writeGroupError(w, "groups.leave", err, user.ID, groupID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) InviteMember(w http.ResponseWriter, r *http.Request) {
	var req inviteMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	groupID := chi.URLParam(r, "id")
	if err := h.Groups.Invite(r.Context(), groupID, req.UserID); err != nil {
		h.writeGroupError(w, "groups.invite", err, user.ID, groupID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) RemoveMember(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	groupID := chi.URLParam(r, "id")
	memberID := chi.URLParam(r, "user_id")
	if err := h.Groups.Remove(r.Context(), groupID, memberID, user.ID); err != nil {
		h.writeGroupError(w, "groups.remove", err, user.ID, groupID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) UpdateGroupBudget(w http.ResponseWriter, r *http.Request) {
	var req updateBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	groupID := chi.URLParam(r, "id")
	if err := h.Groups.UpdateBudget(r.Context(), groupID, req.WeeklyBudget, user.ID); err != nil {
		h.writeGroupError(w, "groups.update_budget", err, user.ID, groupID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListGroupMembers(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	groupID := chi.URLParam(r, "id")
	result, err := h.Groups.ListMembers(r.Context(), groupID)
	if err != nil {
		h.writeGroupError(w, "groups.members", err, user.ID, groupID)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) GroupProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	groupID := chi.URLParam(r, "id")
	result, err := h.Groups.MembersProgress(r.Context(), groupID)
	if err != nil {
		h.writeGroupError(w, "groups.progress", err, user.ID, groupID)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) GroupMemberStreak(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	groupID := chi.URLParam(r, "id")
	memberID := chi.URLParam(r, "user_id")
	streak, err := h.Groups.MemberStreak(r.Context(), memberID, groupID)
	if err != nil {
		h.writeGroupError(w, "groups.member_streak", err, user.ID, groupID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"streak_weeks": streak})
}

func (h *Handlers) GroupCompleteData(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	groupID := chi.URLParam(r, "id")
	result, err := h.Groups.CompleteData(r.Context(), groupID)
	if err != nil {
		h.writeGroupError(w, "groups.complete", err, user.ID, groupID)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) GroupLeaderboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	groupID := chi.URLParam(r, "id")
	result, err := h.Groups.Leaderboard(r.Context(), groupID)
	if err != nil {
		h.writeGroupError(w, "groups.leaderboard", err, user.ID, groupID)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) GroupRecentDrinks(w http.ResponseWriter, r *http.Request) {
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

	groupID := chi.URLParam(r, "id")
	result, err := h.Groups.RecentDrinks(r.Context(), groupID, limit)
	if err != nil {
		h.writeGroupError(w, "groups.recent_drinks", err, user.ID, groupID)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) writeGroupError(w http.ResponseWriter, op string, err error, userID, groupID string) {
	switch {
	case errors.Is(err, groupsdomain.ErrGroupNotFound):
		h.log.BusinessError(op+": group not found", err, "user_id", userID, "group_id", groupID)
		writeError(w, http.StatusNotFound, "group_not_found", "group not found")
	case errors.Is(err, groupsdomain.ErrNotMember):
		h.log.BusinessError(op+": not a member", err, "user_id", userID, "group_id", groupID)
		writeError(w, http.StatusNotFound, "not_member", "user is not a member of this group")
	case errors.Is(err, groupsdomain.ErrAlreadyMember):
		h.log.BusinessError(op+": already a member", err, "user_id", userID, "group_id", groupID)
		writeError(w, http.StatusConflict, "already_member", "user is already a member of this group")
	case errors.Is(err, groupsdomain.ErrNotOwner):
		h.log.BusinessError(op+": not the owner", err, "user_id", userID, "group_id", groupID)
		writeError(w, http.StatusForbidden, "not_owner", "only the group owner can do this")
	case errors.Is(err, groupsdomain.ErrRemoveSelf):
		h.log.BusinessError(op+": owner removing self", err, "user_id", userID, "group_id", groupID)
		writeError(w, http.StatusBadRequest, "invalid_request", "owners cannot remove themselves, leave instead")
	case errors.Is(err, groupsdomain.ErrInvalidBudget):
		h.log.BusinessError(op+": invalid budget", err, "user_id", userID, "group_id", groupID)
		writeError(w, http.StatusBadRequest, "invalid_request", "weekly budget must not be negative")
	default:
		h.log.InternalError(op+": failed", err, "user_id", userID, "group_id", groupID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
