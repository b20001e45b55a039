package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the configured origins only. With an empty list no CORS
// headers are sent, so browsers keep the same-origin policy.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader, "Location"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
