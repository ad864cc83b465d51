package auth

import "net/http"

// RequireAdmin wraps a handler so it only runs for an authenticated
// admin session. Refusal happens before the wrapped handler is reached,
// so a rejected request has no side effect.
func RequireAdmin(sessions *SessionStore, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessions.Validate(r)
		if err != nil || !sess.IsAdmin {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}
