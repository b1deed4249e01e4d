package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"careadmin/internal/api"
	"careadmin/internal/transition"
)

const auditAction = "UPDATE_USER_STATUS"

type Handlers struct {
	Repo   *Repository
	Engine *transition.Executor
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	if api.AdminFromContext(r.Context()) == nil {
		api.WriteError(w, http.StatusUnauthorized, "missing admin identity")
		return
	}

	items, err := h.Repo.List(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if items == nil {
		items = []User{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	if api.AdminFromContext(r.Context()) == nil {
		api.WriteError(w, http.StatusUnauthorized, "missing admin identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "missing id")
		return
	}

	u, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "user not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"user": u})
}

type statusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// PatchStatus sets a user's status directly: any current status is a legal
// origin, so no allow-list is supplied. Admin accounts may only be touched by
// superadmins; that denial is explicit, never silent, on the single-entity
// path.
func (h Handlers) PatchStatus(w http.ResponseWriter, r *http.Request) {
	adm := api.AdminFromContext(r.Context())
	if adm == nil {
		api.WriteError(w, http.StatusUnauthorized, "missing admin identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "missing id")
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}
	next, err := ParseStatus(req.Status)
	if err != nil || !AdminSettable(next) {
		api.WriteError(w, http.StatusBadRequest, "invalid status")
		return
	}

	target, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if target.IsPrivileged() && !adm.IsSuperadmin() {
		api.WriteTransitionError(w, "user", transition.ErrUnauthorized)
		return
	}

	ent, err := h.Engine.Execute(r.Context(), transition.Request{
		EntityID: id,
		Target:   string(next),
		AdminID:  adm.ID,
		Reason:   req.Reason,
		Action:   auditAction,
	})
	if err != nil {
		api.WriteTransitionError(w, "user", err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"user": ent})
}

type bulkStatusRequest struct {
	UserIDs []string `json:"userIds"`
	Status  string   `json:"status"`
	Reason  string   `json:"reason,omitempty"`
}

// BulkStatus applies one status to many users with per-item fault isolation.
// Missing ids and admin accounts the caller may not touch are skipped
// silently; the call itself succeeds whenever the batch is well formed.
func (h Handlers) BulkStatus(w http.ResponseWriter, r *http.Request) {
	adm := api.AdminFromContext(r.Context())
	if adm == nil {
		api.WriteError(w, http.StatusUnauthorized, "missing admin identity")
		return
	}

	var req bulkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}
	next, err := ParseStatus(req.Status)
	if err != nil || !AdminSettable(next) {
		api.WriteError(w, http.StatusBadRequest, "invalid status")
		return
	}

	out, err := h.Engine.ExecuteBulk(r.Context(), req.UserIDs, transition.Request{
		Target:  string(next),
		AdminID: adm.ID,
		Reason:  req.Reason,
		Action:  auditAction,
	}, PermittedBy(adm))
	if err != nil {
		if errors.Is(err, transition.ErrEmptyBatch) {
			api.WriteError(w, http.StatusBadRequest, "userIds must not be empty")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, out)
}
