package booking

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
		items = []Booking{}
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

	b, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "booking not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"booking": b})
}

func (h Handlers) Confirm(w http.ResponseWriter, r *http.Request)  { h.apply(w, r, "confirm") }
func (h Handlers) Start(w http.ResponseWriter, r *http.Request)    { h.apply(w, r, "start") }
func (h Handlers) Complete(w http.ResponseWriter, r *http.Request) { h.apply(w, r, "complete") }
func (h Handlers) Cancel(w http.ResponseWriter, r *http.Request)   { h.apply(w, r, "cancel") }

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
		api.WriteTransitionError(w, "booking", err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"booking": ent})
}
