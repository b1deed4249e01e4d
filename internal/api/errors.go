package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"careadmin/internal/transition"
)

// WriteError emits the back-office error envelope: {"success":false,"error":...}.
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	})
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteTransitionError maps the engine's typed failures onto status codes:
// 404 not found, 400 guard denial (carrying the guard's hint), 403 role
// restriction. Anything else is an internal error with no detail leaked.
func WriteTransitionError(w http.ResponseWriter, kind string, err error) {
	var inv *transition.InvalidTransitionError
	switch {
	case errors.Is(err, transition.ErrNotFound):
		WriteError(w, http.StatusNotFound, fmt.Sprintf("%s not found", kind))
	case errors.As(err, &inv):
		WriteError(w, http.StatusBadRequest, inv.Hint)
	case errors.Is(err, transition.ErrUnauthorized):
		WriteError(w, http.StatusForbidden, err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
