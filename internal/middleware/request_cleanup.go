package middleware

import (
	"io"
	"net/http"
)

// JSON payloads (profiles, checkout, settings) are tiny, anything bigger is rejected
const DefaultMaxRequestBodyBytes int64 = 1 << 20

// DrainAndCloseRequest caps the request body at maxBodyBytes and, once the handler
// returns, drains whatever it left unread so the connection can be reused.
// Handlers reading past the cap get an *http.MaxBytesError from the body.
func DrainAndCloseRequest(maxBodyBytes int64) func(next http.Handler) http.Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxRequestBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			}
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
