package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestLoggerPassesThrough(t *testing.T) {
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		if _, err := w.Write([]byte("body")); err != nil {
			t.Errorf("write: %v", err)
		}
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/properties", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTeapot)
	}
	if w.Body.String() != "body" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestRequestLoggerSkipsHealth(t *testing.T) {
	called := false
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if !called {
		t.Error("handler not reached")
	}
}
