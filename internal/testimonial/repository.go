package testimonial

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a testimonial id does not exist.
var ErrNotFound = errors.New("testimonial not found")

// Repository provides CRUD operations for testimonials.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a testimonial repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, name, role, content, rating, is_visible, created_at`

// Insert adds a new testimonial and returns it with its generated id.
func (r *Repository) Insert(t *Testimonial) (*Testimonial, error) {
	if t.Rating < 1 || t.Rating > 5 {
		return nil, fmt.Errorf("rating must be 1-5, got %d", t.Rating)
	}

	id := uuid.NewString()
	now := time.Now().UTC()

	if _, err := r.db.Exec(
		`INSERT INTO testimonials (id, name, role, content, rating, is_visible, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, t.Name, t.Role, t.Content, t.Rating, t.IsVisible, now,
	); err != nil {
		return nil, fmt.Errorf("inserting testimonial: %w", err)
	}

	return r.GetByID(id)
}

// GetByID returns a testimonial by its id.
func (r *Repository) GetByID(id string) (*Testimonial, error) {
	query := fmt.Sprintf("SELECT %s FROM testimonials WHERE id = ?", selectColumns)
	row := r.db.QueryRow(query, id)

	t, err := scanTestimonial(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying testimonial %s: %w", id, err)
	}

	return t, nil
}

// List returns testimonials newest first. With visibleOnly set, hidden
// rows are filtered out server-side; public readers never see them.
func (r *Repository) List(visibleOnly bool) ([]*Testimonial, error) {
	query := fmt.Sprintf("SELECT %s FROM testimonials", selectColumns)
	if visibleOnly {
		query += " WHERE is_visible = 1"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listing testimonials: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	testimonials := []*Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating testimonials: %w", err)
	}

	return testimonials, nil
}

// Update applies a partial update and returns the updated testimonial.
func (r *Repository) Update(id string, u Update) (*Testimonial, error) {
	var sets []string
	var args []interface{}

	appendSet := func(column string, value interface{}) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if u.Name != nil {
		appendSet("name", *u.Name)
	}
	if u.Role != nil {
		appendSet("role", *u.Role)
	}
	if u.Content != nil {
		appendSet("content", *u.Content)
	}
	if u.Rating != nil {
		if *u.Rating < 1 || *u.Rating > 5 {
			return nil, fmt.Errorf("rating must be 1-5, got %d", *u.Rating)
		}
		appendSet("rating", *u.Rating)
	}
	if u.IsVisible != nil {
		appendSet("is_visible", *u.IsVisible)
	}

	if len(sets) == 0 {
		return r.GetByID(id)
	}

	query := fmt.Sprintf("UPDATE testimonials SET %s WHERE id = ?", strings.Join(sets, ", "))
	args = append(args, id)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating testimonial: %w", err)
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

// Delete removes a testimonial by id. It reports whether a row was
// deleted; a missing id is not an error.
func (r *Repository) Delete(id string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM testimonials WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting testimonial: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking rows affected: %w", err)
	}

	return rows > 0, nil
}

// Count returns the total number of testimonials.
func (r *Repository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM testimonials").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting testimonials: %w", err)
	}
	return n, nil
}

// scanTestimonial scans a testimonial from a database row.
func scanTestimonial(row interface{ Scan(...interface{}) error }) (*Testimonial, error) {
	var t Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Role, &t.Content, &t.Rating, &t.IsVisible, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
