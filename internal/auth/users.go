// Package auth provides admin users, cookie sessions, and the admin
// gate for the API.
package auth

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown usernames and
// wrong passwords so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User is an account in the users table. The password hash never
// leaves this package.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserStore manages users in SQLite.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a user store.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Create adds a user with a bcrypt-hashed password. There is no public
// signup; this is reached only from the seeding CLI.
func (s *UserStore) Create(username, password string, isAdmin bool) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	id := uuid.NewString()
	now := time.Now().UTC()

	if _, err := s.db.Exec(
		"INSERT INTO users (id, username, password_hash, is_admin, created_at) VALUES (?, ?, ?, ?, ?)",
		id, username, string(hash), isAdmin, now,
	); err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, fmt.Errorf("user already exists: %s", username)
		}
		return nil, fmt.Errorf("adding user: %w", err)
	}

	return &User{ID: id, Username: username, IsAdmin: isAdmin, CreatedAt: now}, nil
}

// Authenticate checks a username/password pair. Unknown usernames and
// bad passwords are indistinguishable to the caller.
func (s *UserStore) Authenticate(username, password string) (*User, error) {
	var u User
	var hash string

	err := s.db.QueryRow(
		"SELECT id, username, password_hash, is_admin, created_at FROM users WHERE username = ?",
		strings.TrimSpace(username),
	).Scan(&u.ID, &u.Username, &hash, &u.IsAdmin, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &u, nil
}

// GetByID returns a user by id.
func (s *UserStore) GetByID(id string) (*User, error) {
	var u User
	err := s.db.QueryRow(
		"SELECT id, username, is_admin, created_at FROM users WHERE id = ?", id,
	).Scan(&u.ID, &u.Username, &u.IsAdmin, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return &u, nil
}

// GetByUsername returns a user by username.
func (s *UserStore) GetByUsername(username string) (*User, error) {
	var u User
	err := s.db.QueryRow(
		"SELECT id, username, is_admin, created_at FROM users WHERE username = ?",
		strings.TrimSpace(username),
	).Scan(&u.ID, &u.Username, &u.IsAdmin, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return &u, nil
}

// ListAdmins returns all admin users.
func (s *UserStore) ListAdmins() ([]*User, error) {
	rows, err := s.db.Query(
		"SELECT id, username, is_admin, created_at FROM users WHERE is_admin = 1 ORDER BY username",
	)
	if err != nil {
		return nil, fmt.Errorf("listing admins: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", cerr)
		}
	}()

	var users []*User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, &u)
	}

	return users, rows.Err()
}
