package payment

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"careadmin/internal/api"
	"careadmin/internal/transition"
)

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
		items = []Payment{}
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

	p, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "payment not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"payment": p})
}

// Summary serves per-currency totals for the finance dashboard.
func (h Handlers) Summary(w http.ResponseWriter, r *http.Request) {
	if api.AdminFromContext(r.Context()) == nil {
		api.WriteError(w, http.StatusUnauthorized, "missing admin identity")
		return
	}

	payments, err := h.Repo.List(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"summary": Summarize(payments)})
}

func (h Handlers) MarkPaid(w http.ResponseWriter, r *http.Request) { h.apply(w, r, "mark-paid") }
func (h Handlers) Refund(w http.ResponseWriter, r *http.Request)   { h.apply(w, r, "refund") }

type transitionRequest struct {
	Reason string `json:"reason,omitempty"`
}

func (h Handlers) apply(w http.ResponseWriter, r *http.Request, verb string) {
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

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		api.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	op := operations[verb]
	ent, err := h.Engine.Execute(r.Context(), op.request(id, adm.ID, req.Reason))
	if err != nil {
		api.WriteTransitionError(w, "payment", err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"payment": ent})
}
