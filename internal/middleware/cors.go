package middleware

import (
	"net/http"

	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// Cors allows browser requests only from the configured origins.
// Requests without an Origin header (curl, server to server) pass untouched.
func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:       []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposedHeaders:       []string{"Retry-After"},
		AllowCredentials:     true,
		MaxAge:               600,
		OptionsSuccessStatus: http.StatusNoContent,
	})
	c.Log = corsLogger{}
	return c.Handler
}

type corsLogger struct{}

func (corsLogger) Printf(format string, args ...interface{}) {
	log.Tracef("CORS: "+format, args...)
}
