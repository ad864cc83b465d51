package inquiry

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Repository provides create and list operations for all inquiry tables.
// There are deliberately no update or delete operations.
type Repository struct {
	db *sql.DB
}

// NewRepository creates an inquiry repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateContact durably stores a contact inquiry and returns it with
// its generated id and timestamp.
func (r *Repository) CreateContact(in *ContactInquiry) (*ContactInquiry, error) {
	rec := *in
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	if _, err := r.db.Exec(
		`INSERT INTO contact_inquiries (id, name, email, phone, service, message, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Email, rec.Phone, rec.Service, rec.Message, rec.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("inserting contact inquiry: %w", err)
	}

	return &rec, nil
}

// ListContact returns all contact inquiries newest first.
func (r *Repository) ListContact() ([]*ContactInquiry, error) {
	rows, err := r.db.Query(
		`SELECT id, name, email, phone, service, message, created_at
			FROM contact_inquiries ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing contact inquiries: %w", err)
	}
	defer closeRows(rows, &err)

	result := []*ContactInquiry{}
	for rows.Next() {
		var c ContactInquiry
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Service, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning contact inquiry: %w", err)
		}
		result = append(result, &c)
	}

	return result, rows.Err()
}

// CreateQuote durably stores a quote request.
func (r *Repository) CreateQuote(in *QuoteRequest) (*QuoteRequest, error) {
	rec := *in
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	if _, err := r.db.Exec(
		`INSERT INTO quote_requests
			(id, company_name, contact_name, email, phone, service_type, project_location, project_scope, timeline, budget, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CompanyName, rec.ContactName, rec.Email, rec.Phone,
		rec.ServiceType, rec.ProjectLocation, rec.ProjectScope, rec.Timeline,
		rec.Budget, rec.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("inserting quote request: %w", err)
	}

	return &rec, nil
}

// ListQuotes returns all quote requests newest first.
func (r *Repository) ListQuotes() ([]*QuoteRequest, error) {
	rows, err := r.db.Query(
		`SELECT id, company_name, contact_name, email, phone, service_type, project_location, project_scope, timeline, budget, created_at
			FROM quote_requests ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing quote requests: %w", err)
	}
	defer closeRows(rows, &err)

	result := []*QuoteRequest{}
	for rows.Next() {
		var q QuoteRequest
		if err := rows.Scan(
			&q.ID, &q.CompanyName, &q.ContactName, &q.Email, &q.Phone,
			&q.ServiceType, &q.ProjectLocation, &q.ProjectScope, &q.Timeline,
			&q.Budget, &q.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning quote request: %w", err)
		}
		result = append(result, &q)
	}

	return result, rows.Err()
}

// CreatePropertyLead durably stores a property inquiry.
func (r *Repository) CreatePropertyLead(in *PropertyInquiry) (*PropertyInquiry, error) {
	rec := *in
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	if _, err := r.db.Exec(
		`INSERT INTO property_inquiries
			(id, full_name, phone, email, message, property_title, property_location, property_price, property_type, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.FullName, rec.Phone, rec.Email, rec.Message,
		rec.PropertyTitle, rec.PropertyLocation, rec.PropertyPrice,
		rec.PropertyType, rec.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("inserting property inquiry: %w", err)
	}

	return &rec, nil
}

// ListPropertyLeads returns all property inquiries newest first.
func (r *Repository) ListPropertyLeads() ([]*PropertyInquiry, error) {
	rows, err := r.db.Query(
		`SELECT id, full_name, phone, email, message, property_title, property_location, property_price, property_type, created_at
			FROM property_inquiries ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing property inquiries: %w", err)
	}
	defer closeRows(rows, &err)

	result := []*PropertyInquiry{}
	for rows.Next() {
		var p PropertyInquiry
		if err := rows.Scan(
			&p.ID, &p.FullName, &p.Phone, &p.Email, &p.Message,
			&p.PropertyTitle, &p.PropertyLocation, &p.PropertyPrice,
			&p.PropertyType, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning property inquiry: %w", err)
		}
		result = append(result, &p)
	}

	return result, rows.Err()
}

// CreateApplication durably stores a job application.
func (r *Repository) CreateApplication(in *JobApplication) (*JobApplication, error) {
	rec := *in
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	if _, err := r.db.Exec(
		`INSERT INTO job_applications (id, full_name, email, phone, position, experience, cover_letter, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.FullName, rec.Email, rec.Phone, rec.Position,
		rec.Experience, rec.CoverLetter, rec.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("inserting job application: %w", err)
	}

	return &rec, nil
}

// ListApplications returns all job applications newest first.
func (r *Repository) ListApplications() ([]*JobApplication, error) {
	rows, err := r.db.Query(
		`SELECT id, full_name, email, phone, position, experience, cover_letter, created_at
			FROM job_applications ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing job applications: %w", err)
	}
	defer closeRows(rows, &err)

	result := []*JobApplication{}
	for rows.Next() {
		var a JobApplication
		if err := rows.Scan(
			&a.ID, &a.FullName, &a.Email, &a.Phone, &a.Position,
			&a.Experience, &a.CoverLetter, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning job application: %w", err)
		}
		result = append(result, &a)
	}

	return result, rows.Err()
}

// Counts holds per-table inquiry totals.
type Counts struct {
	Contact       int
	Quotes        int
	PropertyLeads int
	Applications  int
}

// Count tallies each inquiry table from current state.
func (r *Repository) Count() (Counts, error) {
	var c Counts
	tables := []struct {
		name string
		dest *int
	}{
		{"contact_inquiries", &c.Contact},
		{"quote_requests", &c.Quotes},
		{"property_inquiries", &c.PropertyLeads},
		{"job_applications", &c.Applications},
	}

	for _, t := range tables {
		if err := r.db.QueryRow("SELECT COUNT(*) FROM " + t.name).Scan(t.dest); err != nil {
			return Counts{}, fmt.Errorf("counting %s: %w", t.name, err)
		}
	}

	return c, nil
}

// ListAll returns every inquiry across all tables as tagged records,
// newest first.
func (r *Repository) ListAll() ([]Record, error) {
	contacts, err := r.ListContact()
	if err != nil {
		return nil, err
	}
	quotes, err := r.ListQuotes()
	if err != nil {
		return nil, err
	}
	leads, err := r.ListPropertyLeads()
	if err != nil {
		return nil, err
	}
	apps, err := r.ListApplications()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(contacts)+len(quotes)+len(leads)+len(apps))
	for _, c := range contacts {
		records = append(records, Record{Kind: KindContact, Contact: c})
	}
	for _, q := range quotes {
		records = append(records, Record{Kind: KindQuote, Quote: q})
	}
	for _, p := range leads {
		records = append(records, Record{Kind: KindPropertyLead, PropertyLead: p})
	}
	for _, a := range apps {
		records = append(records, Record{Kind: KindApplication, Application: a})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt().After(records[j].CreatedAt())
	})

	return records, nil
}

func closeRows(rows *sql.Rows, err *error) {
	if closeErr := rows.Close(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("closing rows: %w", closeErr)
	}
}
