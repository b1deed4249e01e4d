package audit

import (
	"net/http"
	"strings"

	"careadmin/internal/api"
)

type Handlers struct {
	Repo *Repository
}

// List serves the compliance trail. With entityKind+entityId it returns the
// full history for one entity in commit order; without, the most recent
// entries across the board.
func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	if api.AdminFromContext(r.Context()) == nil {
		api.WriteError(w, http.StatusUnauthorized, "missing admin identity")
		return
	}

	kind := strings.TrimSpace(r.URL.Query().Get("entityKind"))
	entityID := strings.TrimSpace(r.URL.Query().Get("entityId"))

	var (
		items []Record
		err   error
	)
	switch {
	case kind != "" && entityID != "":
		items, err = h.Repo.ListByEntity(r.Context(), kind, entityID)
	case kind == "" && entityID == "":
		items, err = h.Repo.ListRecent(r.Context(), 100)
	default:
		api.WriteError(w, http.StatusBadRequest, "entityKind and entityId must be provided together")
		return
	}
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if items == nil {
		items = []Record{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}
