package web

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terracore/terracore-site/internal/property"
	"github.com/terracore/terracore-site/internal/testimonial"
)

func TestAdminEndpointsRejectUnauthenticated(t *testing.T) {
	s := testServer(t)

	paths := []string{
		"/api/admin/properties",
		"/api/admin/testimonials",
		"/api/admin/contact-inquiries",
		"/api/admin/quote-requests",
		"/api/admin/property-inquiries",
		"/api/admin/job-applications",
		"/api/admin/inquiries",
		"/api/admin/stats",
	}
	for _, path := range paths {
		w := doJSON(t, s, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	// A rejected write must not touch the store.
	w := doJSON(t, s, http.MethodPost, "/api/admin/properties", map[string]interface{}{
		"title": "Plot", "type": "For Sale", "category": "Land",
		"location": "Lekki", "size": "1 acre", "price": "₦10,000,000", "description": "d",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	list, err := s.props.List(property.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAdminPropertyCRUD(t *testing.T) {
	s := testServer(t)
	cookie := login(t, s)

	// Create
	w := doJSON(t, s, http.MethodPost, "/api/admin/properties", map[string]interface{}{
		"title":       "Commercial Land - Lagos",
		"type":        "For Sale",
		"category":    "Land",
		"location":    "Lekki, Lagos",
		"size":        "2 acres",
		"price":       "₦450,000,000",
		"description": "Fenced commercial plot.",
		"features":    []string{"C of O"},
		"images":      []string{},
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var created property.Property
	decodeBody(t, w, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, property.StatusAvailable, created.Status)

	// Read
	w = doJSON(t, s, http.MethodGet, "/api/admin/properties/"+created.ID, nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched property.Property
	decodeBody(t, w, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Commercial Land - Lagos", fetched.Title)

	// Update
	w = doJSON(t, s, http.MethodPut, "/api/admin/properties/"+created.ID, map[string]string{
		"status": "sold",
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var updated property.Property
	decodeBody(t, w, &updated)
	assert.Equal(t, property.StatusSold, updated.Status)
	assert.Equal(t, created.Title, updated.Title)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	// Delete
	w = doJSON(t, s, http.MethodDelete, "/api/admin/properties/"+created.ID, nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doJSON(t, s, http.MethodGet, "/api/admin/properties/"+created.ID, nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminPropertyCreateValidation(t *testing.T) {
	s := testServer(t)
	cookie := login(t, s)

	w := doJSON(t, s, http.MethodPost, "/api/admin/properties", map[string]string{
		"title":       "Plot",
		"type":        "Lease",
		"category":    "Land",
		"location":    "Lekki",
		"size":        "1 acre",
		"price":       "₦10,000,000",
		"description": "d",
	}, cookie)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, w, &resp)
	assert.Contains(t, resp.Fields, "type")
}

func TestAdminPropertyNotFound(t *testing.T) {
	s := testServer(t)
	cookie := login(t, s)

	w := doJSON(t, s, http.MethodGet, "/api/admin/properties/no-such-id", nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, s, http.MethodPut, "/api/admin/properties/no-such-id", map[string]string{
		"title": "New Title",
	}, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, s, http.MethodDelete, "/api/admin/properties/no-such-id", nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminPropertiesListsAllStatuses(t *testing.T) {
	s := testServer(t)
	cookie := login(t, s)

	p, err := s.props.Insert(&property.Property{
		Title: "Plot", Type: property.TypeForSale, Category: property.CategoryLand,
		Location: "Lekki", Size: "1 acre", Price: "₦10,000,000", Description: "d",
	})
	require.NoError(t, err)
	status := property.StatusUnderOffer
	_, err = s.props.Update(p.ID, property.Update{Status: &status})
	require.NoError(t, err)

	w := doJSON(t, s, http.MethodGet, "/api/admin/properties", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var list []*property.Property
	decodeBody(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, property.StatusUnderOffer, list[0].Status)
}

func TestAdminTestimonialCRUD(t *testing.T) {
	s := testServer(t)
	cookie := login(t, s)

	// IsVisible omitted defaults to true.
	w := doJSON(t, s, http.MethodPost, "/api/admin/testimonials", map[string]interface{}{
		"name":    "Adaeze Okafor",
		"role":    "Homeowner",
		"content": "Smooth process from survey to handover.",
		"rating":  5,
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var created testimonial.Testimonial
	decodeBody(t, w, &created)
	require.NotEmpty(t, created.ID)
	assert.True(t, created.IsVisible)

	// Hide it
	w = doJSON(t, s, http.MethodPut, "/api/admin/testimonials/"+created.ID, map[string]bool{
		"isVisible": false,
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var updated testimonial.Testimonial
	decodeBody(t, w, &updated)
	assert.False(t, updated.IsVisible)

	// Hidden rows still appear in the admin list
	w = doJSON(t, s, http.MethodGet, "/api/admin/testimonials", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var list []*testimonial.Testimonial
	decodeBody(t, w, &list)
	assert.Len(t, list, 1)

	// And never in the public one
	w = doJSON(t, s, http.MethodGet, "/api/testimonials", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &list)
	assert.Empty(t, list)

	// Delete
	w = doJSON(t, s, http.MethodDelete, "/api/admin/testimonials/"+created.ID, nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodDelete, "/api/admin/testimonials/"+created.ID, nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminTestimonialRatingValidation(t *testing.T) {
	s := testServer(t)
	cookie := login(t, s)

	w := doJSON(t, s, http.MethodPost, "/api/admin/testimonials", map[string]interface{}{
		"name":    "Adaeze Okafor",
		"role":    "Homeowner",
		"content": "Smooth process from survey to handover.",
		"rating":  6,
	}, cookie)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, w, &resp)
	assert.Contains(t, resp.Fields, "rating")
}

func TestAdminInquiryFeeds(t *testing.T) {
	s := testServer(t)
	cookie := login(t, s)

	w := doJSON(t, s, http.MethodPost, "/api/contact-inquiries", map[string]string{
		"name": "Ngozi Bello", "email": "ngozi@example.com",
		"service": "Land Survey", "message": "Please call me about the plot.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/admin/contact-inquiries", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var contacts []map[string]interface{}
	decodeBody(t, w, &contacts)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Ngozi Bello", contacts[0]["name"])

	// Combined feed carries the kind tag.
	w = doJSON(t, s, http.MethodGet, "/api/admin/inquiries", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var records []map[string]interface{}
	decodeBody(t, w, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "contact", records[0]["kind"])
	assert.NotNil(t, records[0]["contact"])
}

func TestAdminStats(t *testing.T) {
	s := testServer(t)
	cookie := login(t, s)

	for i := 0; i < 2; i++ {
		_, err := s.props.Insert(&property.Property{
			Title: "Plot", Type: property.TypeForSale, Category: property.CategoryLand,
			Location: "Lekki", Size: "1 acre", Price: "₦10,000,000", Description: "d",
		})
		require.NoError(t, err)
	}
	p, err := s.props.Insert(&property.Property{
		Title: "Plot", Type: property.TypeForSale, Category: property.CategoryLand,
		Location: "Lekki", Size: "1 acre", Price: "₦10,000,000", Description: "d",
	})
	require.NoError(t, err)
	status := property.StatusSold
	_, err = s.props.Update(p.ID, property.Update{Status: &status})
	require.NoError(t, err)

	w := doJSON(t, s, http.MethodPost, "/api/contact-inquiries", map[string]string{
		"name": "Ngozi Bello", "email": "ngozi@example.com",
		"service": "Land Survey", "message": "Please call me about the plot.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/admin/stats", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var stats statsResponse
	decodeBody(t, w, &stats)
	assert.Equal(t, 3, stats.TotalProperties)
	assert.Equal(t, 2, stats.AvailableProperties)
	assert.Equal(t, 1, stats.SoldProperties)
	assert.Equal(t, 1, stats.ContactInquiries)
	assert.Equal(t, 0, stats.QuoteRequests)
	assert.Equal(t, 0, stats.PropertyInquiries)
	assert.Equal(t, 0, stats.JobApplications)
	assert.Equal(t, 0, stats.TotalTestimonials)
	assert.Equal(t, stats.ContactInquiries+stats.QuoteRequests+stats.PropertyInquiries, stats.TotalInquiries)
}
