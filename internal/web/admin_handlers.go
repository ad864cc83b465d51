package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/terracore/terracore-site/internal/property"
	"github.com/terracore/terracore-site/internal/testimonial"
	"github.com/terracore/terracore-site/internal/validate"
)

// handleAdminProperties lists all listings or creates one.
func (s *Server) handleAdminProperties(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.props.List(property.ListOptions{})
		if err != nil {
			slog.Error("listing properties", "err", err)
			apiError(w, "internal error", http.StatusInternalServerError)
			return
		}
		apiJSON(w, list, http.StatusOK)

	case http.MethodPost:
		var in validate.PropertyInput
		if !decodeJSON(w, r, &in) {
			return
		}
		if fields := validate.Struct(in); fields != nil {
			validationFailed(w, fields)
			return
		}

		created, err := s.props.Insert(&property.Property{
			Title:       in.Title,
			Type:        property.Type(in.Type),
			Category:    property.Category(in.Category),
			Location:    in.Location,
			Size:        in.Size,
			Price:       in.Price,
			Description: in.Description,
			Features:    in.Features,
			Images:      in.Images,
			Status:      property.Status(in.Status),
		})
		if err != nil {
			slog.Error("creating property", "err", err)
			apiError(w, "internal error", http.StatusInternalServerError)
			return
		}

		slog.Info("property created", "id", created.ID)
		apiJSON(w, created, http.StatusCreated)

	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleAdminPropertyByID reads, updates, or deletes a single listing.
func (s *Server) handleAdminPropertyByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/properties/")
	if id == "" || strings.Contains(id, "/") {
		apiError(w, "invalid property id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, err := s.props.GetByID(id)
		if errors.Is(err, property.ErrNotFound) {
			apiError(w, "property not found", http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting property", "id", id, "err", err)
			apiError(w, "internal error", http.StatusInternalServerError)
			return
		}
		apiJSON(w, p, http.StatusOK)

	case http.MethodPut:
		var in validate.PropertyUpdateInput
		if !decodeJSON(w, r, &in) {
			return
		}
		if fields := validate.Struct(in); fields != nil {
			validationFailed(w, fields)
			return
		}

		updated, err := s.props.Update(id, propertyUpdate(in))
		if errors.Is(err, property.ErrNotFound) {
			apiError(w, "property not found", http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("updating property", "id", id, "err", err)
			apiError(w, "internal error", http.StatusInternalServerError)
			return
		}

		slog.Info("property updated", "id", id)
		apiJSON(w, updated, http.StatusOK)

	case http.MethodDelete:
		deleted, err := s.props.Delete(id)
		if err != nil {
			slog.Error("deleting property", "id", id, "err", err)
			apiError(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !deleted {
			apiError(w, "property not found", http.StatusNotFound)
			return
		}

		slog.Info("property deleted", "id", id)
		apiJSON(w, map[string]bool{"success": true}, http.StatusOK)

	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// propertyUpdate converts the validated payload to a store update.
func propertyUpdate(in validate.PropertyUpdateInput) property.Update {
	u := property.Update{
		Title:       in.Title,
		Location:    in.Location,
		Size:        in.Size,
		Price:       in.Price,
		Description: in.Description,
		Features:    in.Features,
		Images:      in.Images,
	}
	if in.Type != nil {
		t := property.Type(*in.Type)
		u.Type = &t
	}
	if in.Category != nil {
		c := property.Category(*in.Category)
		u.Category = &c
	}
	if in.Status != nil {
		st := property.Status(*in.Status)
		u.Status = &st
	}
	return u
}

// handleAdminTestimonials lists all testimonials or creates one.
func (s *Server) handleAdminTestimonials(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.testimonials.List(false)
		if err != nil {
			slog.Error("listing testimonials", "err", err)
			apiError(w, "internal error", http.StatusInternalServerError)
			return
		}
		apiJSON(w, list, http.StatusOK)

	case http.MethodPost:
		var in validate.TestimonialInput
		if !decodeJSON(w, r, &in) {
			return
		}
		if fields := validate.Struct(in); fields != nil {
			validationFailed(w, fields)
			return
		}

		visible := true
		if in.IsVisible != nil {
			visible = *in.IsVisible
		}

		created, err := s.testimonials.Insert(&testimonial.Testimonial{
			Name:      in.Name,
			Role:      in.Role,
			Content:   in.Content,
			Rating:    in.Rating,
			IsVisible: visible,
		})
		if err != nil {
			slog.Error("creating testimonial", "err", err)
			apiError(w, "internal error", http.StatusInternalServerError)
			return
		}

		slog.Info("testimonial created", "id", created.ID)
		apiJSON(w, created, http.StatusCreated)

	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleAdminTestimonialByID reads, updates, or deletes a testimonial.
func (s *Server) handleAdminTestimonialByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/testimonials/")
	if id == "" || strings.Contains(id, "/") {
		apiError(w, "invalid testimonial id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		t, err := s.testimonials.GetByID(id)
		if errors.Is(err, testimonial.ErrNotFound) {
			apiError(w, "testimonial not found", http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting testimonial", "id", id, "err", err)
			apiError(w, "internal error", http.StatusInternalServerError)
			return
		}
		apiJSON(w, t, http.StatusOK)

	case http.MethodPut:
		var in validate.TestimonialUpdateInput
		if !decodeJSON(w, r, &in) {
			return
		}
		if fields := validate.Struct(in); fields != nil {
			validationFailed(w, fields)
			return
		}

		updated, err := s.testimonials.Update(id, testimonial.Update{
			Name:      in.Name,
			Role:      in.Role,
			Content:   in.Content,
			Rating:    in.Rating,
			IsVisible: in.IsVisible,
		})
		if errors.Is(err, testimonial.ErrNotFound) {
			apiError(w, "testimonial not found", http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("updating testimonial", "id", id, "err", err)
			apiError(w, "internal error", http.StatusInternalServerError)
			return
		}

		slog.Info("testimonial updated", "id", id)
		apiJSON(w, updated, http.StatusOK)

	case http.MethodDelete:
		deleted, err := s.testimonials.Delete(id)
		if err != nil {
			slog.Error("deleting testimonial", "id", id, "err", err)
			apiError(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !deleted {
			apiError(w, "testimonial not found", http.StatusNotFound)
			return
		}

		slog.Info("testimonial deleted", "id", id)
		apiJSON(w, map[string]bool{"success": true}, http.StatusOK)

	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleAdminContactInquiries lists all contact inquiries.
func (s *Server) handleAdminContactInquiries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	list, err := s.inquiries.ListContact()
	if err != nil {
		slog.Error("listing contact inquiries", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}
	apiJSON(w, list, http.StatusOK)
}

// handleAdminQuoteRequests lists all quote requests.
func (s *Server) handleAdminQuoteRequests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	list, err := s.inquiries.ListQuotes()
	if err != nil {
		slog.Error("listing quote requests", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}
	apiJSON(w, list, http.StatusOK)
}

// handleAdminPropertyLeads lists all property inquiries.
func (s *Server) handleAdminPropertyLeads(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	list, err := s.inquiries.ListPropertyLeads()
	if err != nil {
		slog.Error("listing property inquiries", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}
	apiJSON(w, list, http.StatusOK)
}

// handleAdminApplications lists all job applications.
func (s *Server) handleAdminApplications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	list, err := s.inquiries.ListApplications()
	if err != nil {
		slog.Error("listing job applications", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}
	apiJSON(w, list, http.StatusOK)
}

// handleAdminAllInquiries returns the combined tagged feed across all
// inquiry tables, newest first.
func (s *Server) handleAdminAllInquiries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, err := s.inquiries.ListAll()
	if err != nil {
		slog.Error("listing inquiries", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}
	apiJSON(w, records, http.StatusOK)
}

// statsResponse is the dashboard aggregate. totalInquiries covers the
// three visitor inquiry tables; job applications are counted
// separately.
type statsResponse struct {
	TotalProperties     int `json:"totalProperties"`
	AvailableProperties int `json:"availableProperties"`
	SoldProperties      int `json:"soldProperties"`
	TotalInquiries      int `json:"totalInquiries"`
	ContactInquiries    int `json:"contactInquiries"`
	QuoteRequests       int `json:"quoteRequests"`
	PropertyInquiries   int `json:"propertyInquiries"`
	JobApplications     int `json:"jobApplications"`
	TotalTestimonials   int `json:"totalTestimonials"`
}

// handleAdminStats computes dashboard counts from current store state.
func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	props, err := s.props.Count()
	if err != nil {
		slog.Error("counting properties", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	inquiries, err := s.inquiries.Count()
	if err != nil {
		slog.Error("counting inquiries", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	testimonials, err := s.testimonials.Count()
	if err != nil {
		slog.Error("counting testimonials", "err", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	apiJSON(w, statsResponse{
		TotalProperties:     props.Total,
		AvailableProperties: props.Available,
		SoldProperties:      props.Sold,
		TotalInquiries:      inquiries.Contact + inquiries.Quotes + inquiries.PropertyLeads,
		ContactInquiries:    inquiries.Contact,
		QuoteRequests:       inquiries.Quotes,
		PropertyInquiries:   inquiries.PropertyLeads,
		JobApplications:     inquiries.Applications,
		TotalTestimonials:   testimonials,
	}, http.StatusOK)
}
