package web

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terracore/terracore-site/internal/inquiry"
	"github.com/terracore/terracore-site/internal/property"
	"github.com/terracore/terracore-site/internal/testimonial"
)

func TestContactIntakeCreated(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/contact-inquiries", map[string]string{
		"name":    "Ngozi Bello",
		"email":   "ngozi@example.com",
		"phone":   "08012345678",
		"service": "Land Survey",
		"message": "Please call me about the Lekki plot.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var rec inquiry.ContactInquiry
	decodeBody(t, w, &rec)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Ngozi Bello", rec.Name)
	assert.False(t, rec.CreatedAt.IsZero())

	stored, err := s.inquiries.ListContact()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, rec.ID, stored[0].ID)
}

func TestContactIntakeValidationFailure(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/contact-inquiries", map[string]string{
		"name":    "N",
		"email":   "not-an-email",
		"service": "",
		"message": "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "invalid request data", resp.Error)
	assert.Contains(t, resp.Fields, "name")
	assert.Contains(t, resp.Fields, "email")
	assert.Contains(t, resp.Fields, "service")
	assert.Contains(t, resp.Fields, "message")

	// Nothing was stored.
	stored, err := s.inquiries.ListContact()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestContactIntakeBadJSON(t *testing.T) {
	s := testServer(t)

	r := newRawRequest(http.MethodPost, "/api/contact-inquiries", "{not json")
	w := serve(s, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuoteIntakeScopeBoundary(t *testing.T) {
	s := testServer(t)

	payload := map[string]string{
		"companyName":     "Bello Holdings",
		"contactName":     "Tunde Bello",
		"email":           "tunde@example.com",
		"phone":           "08098765432",
		"serviceType":     "Construction",
		"projectLocation": "Abuja",
		"projectScope":    strings.Repeat("x", 49),
		"timeline":        "3 months",
	}

	w := doJSON(t, s, http.MethodPost, "/api/quote-requests", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	payload["projectScope"] = strings.Repeat("x", 50)
	w = doJSON(t, s, http.MethodPost, "/api/quote-requests", payload)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPropertyLeadIntakeKeepsSnapshot(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/property-inquiries", map[string]string{
		"fullName":         "Emeka Obi",
		"phone":            "08011122233",
		"message":          "Is this still available?",
		"propertyTitle":    "Commercial Land - Lagos",
		"propertyLocation": "Lekki, Lagos",
		"propertyPrice":    "₦450,000,000",
		"propertyType":     "Land",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var rec inquiry.PropertyInquiry
	decodeBody(t, w, &rec)
	assert.Equal(t, "Commercial Land - Lagos", rec.PropertyTitle)
	assert.Equal(t, "₦450,000,000", rec.PropertyPrice)
}

func TestJobApplicationIntake(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/job-applications", map[string]string{
		"fullName":    "Funke Adeyemi",
		"email":       "funke@example.com",
		"phone":       "08055566677",
		"position":    "Site Engineer",
		"experience":  "6 years",
		"coverLetter": strings.Repeat("x", 50),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	stored, err := s.inquiries.ListApplications()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Site Engineer", stored[0].Position)
}

func TestIntakeRejectsGet(t *testing.T) {
	s := testServer(t)

	for _, path := range []string{
		"/api/contact-inquiries",
		"/api/quote-requests",
		"/api/property-inquiries",
		"/api/job-applications",
	} {
		w := doJSON(t, s, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, path)
	}
}

func TestPublicPropertiesAvailableOnly(t *testing.T) {
	s := testServer(t)

	avail, err := s.props.Insert(&property.Property{
		Title: "Plot A", Type: property.TypeForSale, Category: property.CategoryLand,
		Location: "Lekki", Size: "1 acre", Price: "₦10,000,000", Description: "d",
	})
	require.NoError(t, err)

	sold, err := s.props.Insert(&property.Property{
		Title: "Plot B", Type: property.TypeForSale, Category: property.CategoryLand,
		Location: "Lekki", Size: "1 acre", Price: "₦10,000,000", Description: "d",
	})
	require.NoError(t, err)
	status := property.StatusSold
	_, err = s.props.Update(sold.ID, property.Update{Status: &status})
	require.NoError(t, err)

	w := doJSON(t, s, http.MethodGet, "/api/properties", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []*property.Property
	decodeBody(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, avail.ID, list[0].ID)
}

func TestPublicPropertiesEmptyList(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/properties", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestPublicTestimonialsVisibleOnly(t *testing.T) {
	s := testServer(t)

	visible, err := s.testimonials.Insert(&testimonial.Testimonial{
		Name: "Adaeze Okafor", Role: "Homeowner", Content: "Great team to work with.",
		Rating: 5, IsVisible: true,
	})
	require.NoError(t, err)

	_, err = s.testimonials.Insert(&testimonial.Testimonial{
		Name: "Hidden", Role: "Client", Content: "Not published yet today.",
		Rating: 4, IsVisible: false,
	})
	require.NoError(t, err)

	w := doJSON(t, s, http.MethodGet, "/api/testimonials", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []*testimonial.Testimonial
	decodeBody(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, visible.ID, list[0].ID)
}

func TestHealth(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Equal(t, "ok", resp["status"])
}
