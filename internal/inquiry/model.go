// Package inquiry provides the append-only visitor inquiry models and
// data access. Inquiry rows are an audit trail: created once, never
// updated or deleted.
package inquiry

import "time"

// ContactInquiry is a general contact-form message.
type ContactInquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuoteRequest is a project quote request from a prospective client.
type QuoteRequest struct {
	ID              string    `json:"id"`
	CompanyName     string    `json:"companyName"`
	ContactName     string    `json:"contactName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ServiceType     string    `json:"serviceType"`
	ProjectLocation string    `json:"projectLocation"`
	ProjectScope    string    `json:"projectScope"`
	Timeline        string    `json:"timeline"`
	Budget          string    `json:"budget,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// PropertyInquiry is a lead on a specific listing. The property fields
// are a snapshot copied at inquiry time, not foreign keys, so the
// record stays accurate if the listing later changes or is deleted.
type PropertyInquiry struct {
	ID               string    `json:"id"`
	FullName         string    `json:"fullName"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email,omitempty"`
	Message          string    `json:"message"`
	PropertyTitle    string    `json:"propertyTitle"`
	PropertyLocation string    `json:"propertyLocation"`
	PropertyPrice    string    `json:"propertyPrice"`
	PropertyType     string    `json:"propertyType"`
	CreatedAt        time.Time `json:"createdAt"`
}

// JobApplication is a careers-page application.
type JobApplication struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Position    string    `json:"position"`
	Experience  string    `json:"experience"`
	CoverLetter string    `json:"coverLetter"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Kind tags a Record with the inquiry table it came from.
type Kind string

const (
	KindContact      Kind = "contact"
	KindQuote        Kind = "quote"
	KindPropertyLead Kind = "property"
	KindApplication  Kind = "application"
)

// Record is a tagged variant over the inquiry kinds. Exactly one of the
// pointers is set, matching Kind. The combined admin feed dispatches on
// the tag rather than probing for fields.
type Record struct {
	Kind         Kind             `json:"kind"`
	Contact      *ContactInquiry  `json:"contact,omitempty"`
	Quote        *QuoteRequest    `json:"quote,omitempty"`
	PropertyLead *PropertyInquiry `json:"propertyLead,omitempty"`
	Application  *JobApplication  `json:"application,omitempty"`
}

// CreatedAt returns the creation time of the wrapped record.
func (r Record) CreatedAt() time.Time {
	switch r.Kind {
	case KindContact:
		return r.Contact.CreatedAt
	case KindQuote:
		return r.Quote.CreatedAt
	case KindPropertyLead:
		return r.PropertyLead.CreatedAt
	case KindApplication:
		return r.Application.CreatedAt
	}
	return time.Time{}
}
