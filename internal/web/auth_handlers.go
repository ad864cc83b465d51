package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/terracore/terracore-site/internal/auth"
	"github.com/terracore/terracore-site/internal/validate"
)

// handleLogin checks credentials and opens an admin session. Unknown
// usernames, wrong passwords, and non-admin accounts all produce the
// same generic failure.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in validate.LoginInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := validate.Struct(in); fields != nil {
		validationFailed(w, fields)
		return
	}

	user, err := s.users.Authenticate(in.Username, in.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			slog.Error("authenticating user", "err", err)
		}
		apiError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if !user.IsAdmin {
		apiError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := s.sessions.Create(w, user); err != nil {
		slog.Error("creating session", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("login success", "user", user.Username, "method", "password")
	apiJSON(w, map[string]string{"id": user.ID, "username": user.Username}, http.StatusOK)
}

// handleLogout destroys the session. A request without a session is a
// no-op success.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := s.sessions.Destroy(w, r); err != nil {
		slog.Error("destroying session", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// handleSession reports whether the caller holds a valid admin session.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, err := s.sessions.Validate(r)
	if err != nil || !sess.IsAdmin {
		apiJSON(w, map[string]bool{"authenticated": false}, http.StatusOK)
		return
	}

	apiJSON(w, map[string]bool{"authenticated": true}, http.StatusOK)
}
