package property

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a property id does not exist.
var ErrNotFound = errors.New("property not found")

// Repository provides CRUD operations for properties.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a property repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, title, type, category, location, size, price, description, features, images, status, created_at, updated_at`

// Insert adds a new property and returns it with its generated id and
// timestamps. A caller-supplied id or status outside the closed set is
// replaced; status defaults to "available".
func (r *Repository) Insert(p *Property) (*Property, error) {
	if !ValidStatus(string(p.Status)) {
		p.Status = StatusAvailable
	}

	id := uuid.NewString()
	now := time.Now().UTC()

	features, err := json.Marshal(emptyIfNil(p.Features))
	if err != nil {
		return nil, fmt.Errorf("encoding features: %w", err)
	}
	images, err := json.Marshal(emptyIfNil(p.Images))
	if err != nil {
		return nil, fmt.Errorf("encoding images: %w", err)
	}

	if _, err := r.db.Exec(
		`INSERT INTO properties
			(id, title, type, category, location, size, price, description, features, images, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Title, string(p.Type), string(p.Category), p.Location, p.Size,
		p.Price, p.Description, string(features), string(images), string(p.Status),
		now, now,
	); err != nil {
		return nil, fmt.Errorf("inserting property: %w", err)
	}

	return r.GetByID(id)
}

// GetByID returns a property by its id.
func (r *Repository) GetByID(id string) (*Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE id = ?", selectColumns)
	row := r.db.QueryRow(query, id)

	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying property %s: %w", id, err)
	}

	return p, nil
}

// ListOptions controls filtering for List.
type ListOptions struct {
	Status Status // empty = all
}

// List returns properties newest first, optionally filtered by status.
// Admin dashboards rely on the recency ordering.
func (r *Repository) List(opts ListOptions) ([]*Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties", selectColumns)
	var args []interface{}

	if opts.Status != "" {
		query += " WHERE status = ?"
		args = append(args, string(opts.Status))
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	properties := []*Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating properties: %w", err)
	}

	return properties, nil
}

// Update applies a partial update and returns the updated property.
// updated_at is refreshed on every call; created_at is never touched.
func (r *Repository) Update(id string, u Update) (*Property, error) {
	sets := []string{"updated_at = ?"}
	args := []interface{}{time.Now().UTC()}

	appendSet := func(column string, value interface{}) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if u.Title != nil {
		appendSet("title", *u.Title)
	}
	if u.Type != nil {
		if !ValidType(string(*u.Type)) {
			return nil, fmt.Errorf("invalid listing type: %s", *u.Type)
		}
		appendSet("type", string(*u.Type))
	}
	if u.Category != nil {
		if !ValidCategory(string(*u.Category)) {
			return nil, fmt.Errorf("invalid category: %s", *u.Category)
		}
		appendSet("category", string(*u.Category))
	}
	if u.Location != nil {
		appendSet("location", *u.Location)
	}
	if u.Size != nil {
		appendSet("size", *u.Size)
	}
	if u.Price != nil {
		appendSet("price", *u.Price)
	}
	if u.Description != nil {
		appendSet("description", *u.Description)
	}
	if u.Features != nil {
		data, err := json.Marshal(emptyIfNil(*u.Features))
		if err != nil {
			return nil, fmt.Errorf("encoding features: %w", err)
		}
		appendSet("features", string(data))
	}
	if u.Images != nil {
		data, err := json.Marshal(emptyIfNil(*u.Images))
		if err != nil {
			return nil, fmt.Errorf("encoding images: %w", err)
		}
		appendSet("images", string(data))
	}
	if u.Status != nil {
		if !ValidStatus(string(*u.Status)) {
			return nil, fmt.Errorf("invalid listing status: %s", *u.Status)
		}
		appendSet("status", string(*u.Status))
	}

	query := fmt.Sprintf("UPDATE properties SET %s WHERE id = ?", strings.Join(sets, ", "))
	args = append(args, id)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(id)
}

// Delete removes a property by id. It reports whether a row was deleted;
// a missing id is not an error.
func (r *Repository) Delete(id string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM properties WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking rows affected: %w", err)
	}

	return rows > 0, nil
}

// Counts holds per-status property totals for the dashboard.
type Counts struct {
	Total     int
	Available int
	Sold      int
}

// Count tallies properties by status from current table state.
func (r *Repository) Count() (Counts, error) {
	rows, err := r.db.Query("SELECT status, COUNT(*) FROM properties GROUP BY status")
	if err != nil {
		return Counts{}, fmt.Errorf("counting properties: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var c Counts
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return Counts{}, fmt.Errorf("scanning count: %w", err)
		}
		c.Total += n
		switch Status(status) {
		case StatusAvailable:
			c.Available = n
		case StatusSold:
			c.Sold = n
		}
	}

	return c, rows.Err()
}

// scanProperty scans a property from a database row.
func scanProperty(row interface{ Scan(...interface{}) error }) (*Property, error) {
	var p Property
	var typ, category, status, features, images string

	err := row.Scan(
		&p.ID, &p.Title, &typ, &category, &p.Location, &p.Size,
		&p.Price, &p.Description, &features, &images, &status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Type = Type(typ)
	p.Category = Category(category)
	p.Status = Status(status)

	if err := json.Unmarshal([]byte(features), &p.Features); err != nil {
		return nil, fmt.Errorf("decoding features: %w", err)
	}
	if err := json.Unmarshal([]byte(images), &p.Images); err != nil {
		return nil, fmt.Errorf("decoding images: %w", err)
	}
	p.Features = emptyIfNil(p.Features)
	p.Images = emptyIfNil(p.Images)

	return &p, nil
}

// emptyIfNil keeps list fields serializing as [] rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
