package web

import (
	"log/slog"
	"net/http"

	"github.com/terracore/terracore-site/internal/inquiry"
	"github.com/terracore/terracore-site/internal/property"
	"github.com/terracore/terracore-site/internal/validate"
)

// handleContactIntake accepts a contact form submission.
func (s *Server) handleContactIntake(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in validate.ContactInquiryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := validate.Struct(in); fields != nil {
		validationFailed(w, fields)
		return
	}

	rec, err := s.inquiries.CreateContact(&inquiry.ContactInquiry{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Service: in.Service,
		Message: in.Message,
	})
	if err != nil {
		slog.Error("saving contact inquiry", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("contact inquiry received", "id", rec.ID)
	apiJSON(w, rec, http.StatusCreated)
}

// handleQuoteIntake accepts a quote request submission.
func (s *Server) handleQuoteIntake(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in validate.QuoteRequestInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := validate.Struct(in); fields != nil {
		validationFailed(w, fields)
		return
	}

	rec, err := s.inquiries.CreateQuote(&inquiry.QuoteRequest{
		CompanyName:     in.CompanyName,
		ContactName:     in.ContactName,
		Email:           in.Email,
		Phone:           in.Phone,
		ServiceType:     in.ServiceType,
		ProjectLocation: in.ProjectLocation,
		ProjectScope:    in.ProjectScope,
		Timeline:        in.Timeline,
		Budget:          in.Budget,
	})
	if err != nil {
		slog.Error("saving quote request", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("quote request received", "id", rec.ID)
	apiJSON(w, rec, http.StatusCreated)
}

// handlePropertyLeadIntake accepts a listing inquiry submission.
func (s *Server) handlePropertyLeadIntake(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in validate.PropertyInquiryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := validate.Struct(in); fields != nil {
		validationFailed(w, fields)
		return
	}

	rec, err := s.inquiries.CreatePropertyLead(&inquiry.PropertyInquiry{
		FullName:         in.FullName,
		Phone:            in.Phone,
		Email:            in.Email,
		Message:          in.Message,
		PropertyTitle:    in.PropertyTitle,
		PropertyLocation: in.PropertyLocation,
		PropertyPrice:    in.PropertyPrice,
		PropertyType:     in.PropertyType,
	})
	if err != nil {
		slog.Error("saving property inquiry", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("property inquiry received", "id", rec.ID)
	apiJSON(w, rec, http.StatusCreated)
}

// handleApplicationIntake accepts a careers-page application.
func (s *Server) handleApplicationIntake(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in validate.JobApplicationInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := validate.Struct(in); fields != nil {
		validationFailed(w, fields)
		return
	}

	rec, err := s.inquiries.CreateApplication(&inquiry.JobApplication{
		FullName:    in.FullName,
		Email:       in.Email,
		Phone:       in.Phone,
		Position:    in.Position,
		Experience:  in.Experience,
		CoverLetter: in.CoverLetter,
	})
	if err != nil {
		slog.Error("saving job application", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("job application received", "id", rec.ID)
	apiJSON(w, rec, http.StatusCreated)
}

// handlePublicProperties lists available listings only. Sold and
// under-offer rows never appear here.
func (s *Server) handlePublicProperties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	list, err := s.props.List(property.ListOptions{Status: property.StatusAvailable})
	if err != nil {
		slog.Error("listing properties", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	apiJSON(w, list, http.StatusOK)
}

// handlePublicTestimonials lists visible testimonials only.
func (s *Server) handlePublicTestimonials(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	list, err := s.testimonials.List(true)
	if err != nil {
		slog.Error("listing testimonials", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	apiJSON(w, list, http.StatusOK)
}
