package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL statements to run.
// Timestamps are written by the application, not by SQLite defaults,
// so ordering and updated_at comparisons keep nanosecond precision.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT    PRIMARY KEY,
		username      TEXT    NOT NULL UNIQUE,
		password_hash TEXT    NOT NULL,
		is_admin      INTEGER NOT NULL DEFAULT 0,
		created_at    DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id         TEXT     PRIMARY KEY,
		user_id    TEXT     NOT NULL,
		is_admin   INTEGER  NOT NULL DEFAULT 0,
		expires_at DATETIME NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS passkey_credentials (
		id              TEXT    PRIMARY KEY,
		username        TEXT    NOT NULL,
		name            TEXT    NOT NULL DEFAULT '',
		credential_json TEXT    NOT NULL,
		created_at      DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		type        TEXT NOT NULL,
		category    TEXT NOT NULL,
		location    TEXT NOT NULL,
		size        TEXT NOT NULL,
		price       TEXT NOT NULL,
		description TEXT NOT NULL,
		features    TEXT NOT NULL DEFAULT '[]',
		images      TEXT NOT NULL DEFAULT '[]',
		status      TEXT NOT NULL DEFAULT 'available',
		created_at  DATETIME NOT NULL,
		updated_at  DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id         TEXT    PRIMARY KEY,
		name       TEXT    NOT NULL,
		role       TEXT    NOT NULL,
		content    TEXT    NOT NULL,
		rating     INTEGER NOT NULL CHECK (rating >= 1 AND rating <= 5),
		is_visible INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS contact_inquiries (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		phone      TEXT NOT NULL DEFAULT '',
		service    TEXT NOT NULL,
		message    TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS quote_requests (
		id               TEXT PRIMARY KEY,
		company_name     TEXT NOT NULL,
		contact_name     TEXT NOT NULL,
		email            TEXT NOT NULL,
		phone            TEXT NOT NULL,
		service_type     TEXT NOT NULL,
		project_location TEXT NOT NULL,
		project_scope    TEXT NOT NULL,
		timeline         TEXT NOT NULL,
		budget           TEXT NOT NULL DEFAULT '',
		created_at       DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS property_inquiries (
		id                TEXT PRIMARY KEY,
		full_name         TEXT NOT NULL,
		phone             TEXT NOT NULL,
		email             TEXT NOT NULL DEFAULT '',
		message           TEXT NOT NULL,
		property_title    TEXT NOT NULL,
		property_location TEXT NOT NULL,
		property_price    TEXT NOT NULL,
		property_type     TEXT NOT NULL,
		created_at        DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS job_applications (
		id           TEXT PRIMARY KEY,
		full_name    TEXT NOT NULL,
		email        TEXT NOT NULL,
		phone        TEXT NOT NULL,
		position     TEXT NOT NULL,
		experience   TEXT NOT NULL,
		cover_letter TEXT NOT NULL,
		created_at   DATETIME NOT NULL
	)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
