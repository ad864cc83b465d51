package auth

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"
)

const (
	// Sessions expire a fixed 24 hours after issuance; there is no
	// sliding renewal.
	sessionTTL = 24 * time.Hour

	cookieName = "tc_session"
)

// Session is the server-side record referenced by the session cookie.
type Session struct {
	ID        string
	UserID    string
	IsAdmin   bool
	ExpiresAt time.Time
}

// SessionBackend is the keyed store behind SessionStore. It is an
// interface so multi-instance deployments can swap in an external
// store without touching the HTTP layer.
type SessionBackend interface {
	Put(s *Session) error
	Get(id string) (*Session, error)
	Delete(id string) error
	Cleanup() error
}

// SQLiteSessions is the default SessionBackend.
type SQLiteSessions struct {
	db *sql.DB
}

// NewSQLiteSessions creates the SQLite session backend.
func NewSQLiteSessions(db *sql.DB) *SQLiteSessions {
	return &SQLiteSessions{db: db}
}

// Put stores a session row.
func (s *SQLiteSessions) Put(sess *Session) error {
	if _, err := s.db.Exec(
		"INSERT INTO sessions (id, user_id, is_admin, expires_at, created_at) VALUES (?, ?, ?, ?, ?)",
		sess.ID, sess.UserID, sess.IsAdmin, sess.ExpiresAt, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

// Get returns the session with the given id, or nil when absent.
func (s *SQLiteSessions) Get(id string) (*Session, error) {
	var sess Session
	err := s.db.QueryRow(
		"SELECT id, user_id, is_admin, expires_at FROM sessions WHERE id = ?", id,
	).Scan(&sess.ID, &sess.UserID, &sess.IsAdmin, &sess.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}
	return &sess, nil
}

// Delete removes a session row.
func (s *SQLiteSessions) Delete(id string) error {
	if _, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// Cleanup removes expired sessions.
func (s *SQLiteSessions) Cleanup() error {
	if _, err := s.db.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now().UTC()); err != nil {
		return fmt.Errorf("cleaning up sessions: %w", err)
	}
	return nil
}

// SessionStore manages session cookies over a SessionBackend.
type SessionStore struct {
	backend SessionBackend
	secure  bool
}

// NewSessionStore creates a session store. secure controls the cookie
// Secure flag and should be set outside dev mode.
func NewSessionStore(backend SessionBackend, secure bool) *SessionStore {
	return &SessionStore{backend: backend, secure: secure}
}

// Create generates a new session for the user and sets the cookie.
func (s *SessionStore) Create(w http.ResponseWriter, user *User) error {
	id, err := generateSessionID()
	if err != nil {
		return fmt.Errorf("generating session ID: %w", err)
	}

	expiresAt := time.Now().UTC().Add(sessionTTL)

	if err := s.backend.Put(&Session{
		ID:        id,
		UserID:    user.ID,
		IsAdmin:   user.IsAdmin,
		ExpiresAt: expiresAt,
	}); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Validate checks the session cookie and returns the session if valid.
func (s *SessionStore) Validate(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil, fmt.Errorf("no session cookie")
	}

	sess, err := s.backend.Get(cookie.Value)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("invalid session")
	}

	if time.Now().After(sess.ExpiresAt) {
		if delErr := s.backend.Delete(sess.ID); delErr != nil {
			return nil, fmt.Errorf("deleting expired session: %w", delErr)
		}
		return nil, fmt.Errorf("session expired")
	}

	return sess, nil
}

// Destroy removes the session and clears the cookie. A missing cookie
// is not an error.
func (s *SessionStore) Destroy(w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}

	if err := s.backend.Delete(cookie.Value); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Cleanup removes expired sessions from the backend.
func (s *SessionStore) Cleanup() error {
	return s.backend.Cleanup()
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
