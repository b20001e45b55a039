package middleware

import (
	"net/http"
	"time"

	"movie-catalog/pkg/utils"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// RateLimit limits requests per client IP. requests <= 0 disables it.
func RateLimit(requests int, window time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	if requests <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn("Rate limit exceeded",
				zap.String("ip", r.RemoteAddr),
				zap.String("path", r.URL.Path),
			)
			utils.ResponseTooManyRequests(w, "Too many requests")
		}),
	)
}
