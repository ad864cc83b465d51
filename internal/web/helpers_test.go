package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terracore/terracore-site/internal/auth"
	"github.com/terracore/terracore-site/internal/config"
	"github.com/terracore/terracore-site/internal/db"
)

const (
	testAdminUser = "admin"
	testAdminPass = "correct-horse"
)

// testServer builds a server over a fresh database with one admin
// account seeded.
func testServer(t *testing.T) *Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	d, err := db.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, d.Close())
	})

	_, err = auth.NewUserStore(d).Create(testAdminUser, testAdminPass, true)
	require.NoError(t, err)

	s, err := NewServer(d, config.Config{
		Port:         3000,
		DatabasePath: path,
		BaseURL:      "http://localhost:3000",
		DevMode:      true,
	})
	require.NoError(t, err)

	return s
}

// doJSON sends a JSON request to the server and returns the recorder.
func doJSON(t *testing.T, s *Server, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	r := httptest.NewRequest(method, path, &buf)
	r.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		r.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)
	return w
}

// login authenticates as the seeded admin and returns the session
// cookie.
func login(t *testing.T, s *Server) *http.Cookie {
	t.Helper()

	w := doJSON(t, s, http.MethodPost, "/api/admin/login", map[string]string{
		"username": testAdminUser,
		"password": testAdminPass,
	})
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == "tc_session" {
			return c
		}
	}
	t.Fatal("no session cookie in login response")
	return nil
}

// newRawRequest builds a request with a literal body, for malformed
// payload cases.
func newRawRequest(method, path, body string) *http.Request {
	r := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func serve(s *Server, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)
	return w
}

// decodeBody unmarshals the recorded response body into dst.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}
