package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LogRequest writes one access log entry per request after the response is written.
// Server errors are logged as warnings, everything else at debug level.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{w, http.StatusOK}

			next.ServeHTTP(resp, r)

			entry := log.WithFields(log.Fields{
				"method":   r.Method,
				"route":    routeTemplate(r),
				"path":     r.URL.Path,
				"status":   resp.statusCode,
				"duration": time.Since(begin).Round(time.Microsecond).String(),
				"ua":       r.Header.Get("User-Agent"),
			})
			if resp.statusCode >= http.StatusInternalServerError {
				entry.Warn("request failed")
				return
			}
			entry.Debug("request served")
		})
	}
}
