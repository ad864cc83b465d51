// Package web provides the JSON HTTP API for the site.
package web

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/terracore/terracore-site/internal/auth"
	"github.com/terracore/terracore-site/internal/config"
	"github.com/terracore/terracore-site/internal/inquiry"
	"github.com/terracore/terracore-site/internal/logging"
	"github.com/terracore/terracore-site/internal/property"
	"github.com/terracore/terracore-site/internal/testimonial"
)

// Server is the API HTTP server.
type Server struct {
	props        *property.Repository
	testimonials *testimonial.Repository
	inquiries    *inquiry.Repository
	users        *auth.UserStore
	sessions     *auth.SessionStore
	passkeys     *passkeyHandlers
	mux          *http.ServeMux
}

// NewServer creates an API server over the given database.
func NewServer(db *sql.DB, cfg config.Config) (*Server, error) {
	sessions := auth.NewSessionStore(auth.NewSQLiteSessions(db), !cfg.DevMode)
	users := auth.NewUserStore(db)

	s := &Server{
		props:        property.NewRepository(db),
		testimonials: testimonial.NewRepository(db),
		inquiries:    inquiry.NewRepository(db),
		users:        users,
		sessions:     sessions,
		mux:          http.NewServeMux(),
	}

	pk, err := newPasskeyHandlers(cfg, auth.NewPasskeyStore(db), sessions, users)
	if err != nil {
		return nil, fmt.Errorf("configuring passkeys: %w", err)
	}
	s.passkeys = pk

	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.handleHealth)

	// Public intake and listings
	s.mux.HandleFunc("/api/contact-inquiries", s.handleContactIntake)
	s.mux.HandleFunc("/api/quote-requests", s.handleQuoteIntake)
	s.mux.HandleFunc("/api/property-inquiries", s.handlePropertyLeadIntake)
	s.mux.HandleFunc("/api/job-applications", s.handleApplicationIntake)
	s.mux.HandleFunc("/api/properties", s.handlePublicProperties)
	s.mux.HandleFunc("/api/testimonials", s.handlePublicTestimonials)

	// Session endpoints (ungated: they transition or inspect the gate)
	s.mux.HandleFunc("/api/admin/login", s.handleLogin)
	s.mux.HandleFunc("/api/admin/logout", s.handleLogout)
	s.mux.HandleFunc("/api/admin/session", s.handleSession)

	// Passkey login is public; registration requires a session.
	s.mux.HandleFunc("/api/admin/passkeys/login/begin", s.passkeys.handleBeginLogin)
	s.mux.HandleFunc("/api/admin/passkeys/login/finish", s.passkeys.handleFinishLogin)
	s.mux.HandleFunc("/api/admin/passkeys/register/begin", s.passkeys.handleBeginRegistration)
	s.mux.HandleFunc("/api/admin/passkeys/register/finish", s.passkeys.handleFinishRegistration)

	// Admin-gated content management
	s.mux.Handle("/api/admin/properties", s.requireAdmin(s.handleAdminProperties))
	s.mux.Handle("/api/admin/properties/", s.requireAdmin(s.handleAdminPropertyByID))
	s.mux.Handle("/api/admin/testimonials", s.requireAdmin(s.handleAdminTestimonials))
	s.mux.Handle("/api/admin/testimonials/", s.requireAdmin(s.handleAdminTestimonialByID))
	s.mux.Handle("/api/admin/contact-inquiries", s.requireAdmin(s.handleAdminContactInquiries))
	s.mux.Handle("/api/admin/quote-requests", s.requireAdmin(s.handleAdminQuoteRequests))
	s.mux.Handle("/api/admin/property-inquiries", s.requireAdmin(s.handleAdminPropertyLeads))
	s.mux.Handle("/api/admin/job-applications", s.requireAdmin(s.handleAdminApplications))
	s.mux.Handle("/api/admin/inquiries", s.requireAdmin(s.handleAdminAllInquiries))
	s.mux.Handle("/api/admin/stats", s.requireAdmin(s.handleAdminStats))
}

func (s *Server) requireAdmin(h http.HandlerFunc) http.Handler {
	return auth.RequireAdmin(s.sessions, h)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting API server", "addr", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
