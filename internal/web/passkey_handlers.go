package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"

	"github.com/terracore/terracore-site/internal/auth"
	"github.com/terracore/terracore-site/internal/config"
)

// passkeyHandlers holds WebAuthn-related HTTP handlers for admin
// accounts. Passkeys are an alternative to password login; both paths
// end in the same session gate.
type passkeyHandlers struct {
	wan      *webauthn.WebAuthn
	passkeys *auth.PasskeyStore
	sessions *auth.SessionStore
	users    *auth.UserStore

	// In-memory session data for in-flight WebAuthn ceremonies.
	// regSessions is keyed by username for registration.
	// loginSessionData holds a single login ceremony — only one
	// concurrent passkey login is supported (acceptable for the small
	// admin population).
	mu               sync.Mutex
	regSessions      map[string]*webauthn.SessionData
	loginSessionData *webauthn.SessionData
}

func newPasskeyHandlers(cfg config.Config, passkeys *auth.PasskeyStore, sessions *auth.SessionStore, users *auth.UserStore) (*passkeyHandlers, error) {
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	wan, err := webauthn.New(&webauthn.Config{
		RPDisplayName: "Terracore Admin",
		RPID:          parsed.Hostname(),
		RPOrigins:     []string{cfg.BaseURL},
	})
	if err != nil {
		return nil, err
	}

	return &passkeyHandlers{
		wan:         wan,
		passkeys:    passkeys,
		sessions:    sessions,
		users:       users,
		regSessions: make(map[string]*webauthn.SessionData),
	}, nil
}

// adminFromSession resolves the logged-in admin account, or nil.
func (h *passkeyHandlers) adminFromSession(r *http.Request) *auth.User {
	sess, err := h.sessions.Validate(r)
	if err != nil || !sess.IsAdmin {
		return nil
	}
	user, err := h.users.GetByID(sess.UserID)
	if err != nil {
		return nil
	}
	return user
}

// handleBeginRegistration starts passkey registration for the
// logged-in admin.
func (h *passkeyHandlers) handleBeginRegistration(w http.ResponseWriter, r *http.Request) {
	user := h.adminFromSession(r)
	if user == nil {
		apiError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	creds, err := h.passkeys.WebAuthnCredentials(user.Username)
	if err != nil {
		slog.Error("loading credentials", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkUser := auth.NewPasskeyUser(user, creds)

	// Exclude existing credentials so the same key isn't re-registered
	excludeList := make([]protocol.CredentialDescriptor, len(creds))
	for i, c := range creds {
		excludeList[i] = c.Descriptor()
	}

	creation, session, err := h.wan.BeginRegistration(pkUser,
		webauthn.WithExclusions(excludeList),
	)
	if err != nil {
		slog.Error("beginning registration", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.mu.Lock()
	h.regSessions[user.Username] = session
	h.mu.Unlock()

	apiJSON(w, creation, http.StatusOK)
}

// handleFinishRegistration completes passkey registration.
func (h *passkeyHandlers) handleFinishRegistration(w http.ResponseWriter, r *http.Request) {
	user := h.adminFromSession(r)
	if user == nil {
		apiError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	h.mu.Lock()
	session, ok := h.regSessions[user.Username]
	if ok {
		delete(h.regSessions, user.Username)
	}
	h.mu.Unlock()

	if !ok {
		apiError(w, "no registration in progress", http.StatusBadRequest)
		return
	}

	creds, err := h.passkeys.WebAuthnCredentials(user.Username)
	if err != nil {
		slog.Error("loading credentials", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	credential, err := h.wan.FinishRegistration(auth.NewPasskeyUser(user, creds), *session, r)
	if err != nil {
		slog.Error("finishing registration", "err", err)
		apiError(w, "registration failed", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		name = "Passkey"
	}

	if err := h.passkeys.Save(user.Username, name, credential); err != nil {
		slog.Error("saving credential", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleBeginLogin starts passkey login (discoverable credential).
func (h *passkeyHandlers) handleBeginLogin(w http.ResponseWriter, r *http.Request) {
	assertion, session, err := h.wan.BeginDiscoverableLogin()
	if err != nil {
		slog.Error("beginning passkey login", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.mu.Lock()
	h.loginSessionData = session
	h.mu.Unlock()

	apiJSON(w, assertion, http.StatusOK)
}

// handleFinishLogin completes passkey login and opens a session.
func (h *passkeyHandlers) handleFinishLogin(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	session := h.loginSessionData
	h.loginSessionData = nil
	h.mu.Unlock()

	if session == nil {
		apiError(w, "no login in progress", http.StatusBadRequest)
		return
	}

	var loggedIn *auth.User

	handler := func(rawID, userHandle []byte) (webauthn.User, error) {
		// userHandle is the account id set at registration time.
		user, err := h.users.GetByID(string(userHandle))
		if err != nil {
			return nil, protocol.ErrBadRequest.WithDetails("unknown user")
		}
		if !user.IsAdmin {
			return nil, protocol.ErrBadRequest.WithDetails("unknown user")
		}

		creds, err := h.passkeys.WebAuthnCredentials(user.Username)
		if err != nil {
			return nil, err
		}

		loggedIn = user
		return auth.NewPasskeyUser(user, creds), nil
	}

	if _, _, err := h.wan.FinishPasskeyLogin(handler, *session, r); err != nil {
		slog.Error("finishing passkey login", "err", err)
		apiError(w, "login failed", http.StatusUnauthorized)
		return
	}

	if err := h.sessions.Create(w, loggedIn); err != nil {
		slog.Error("creating session", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("login success", "user", loggedIn.Username, "method", "passkey")
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
