package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"careadmin/internal/admin"
	"careadmin/internal/api"
	"careadmin/pkg/config"
	"careadmin/pkg/session"
)

type Handlers struct {
	Cfg    config.Config
	Admins *admin.Repository
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a session token. Lookup and password
// failures are indistinguishable to the caller.
func (h Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		api.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	a, err := h.Admins.FindByEmail(r.Context(), req.Email)
	if err != nil {
		api.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)) != nil {
		api.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	now := time.Now()
	token, err := session.Issue(h.Cfg.SessionSecret, a.ID, a.Role, h.Cfg.SessionTTL, now)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to issue session")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"token":     token,
		"expiresAt": now.Add(h.Cfg.SessionTTL),
		"admin":     a,
	})
}
