package middleware

import (
	"net/http"
	"strconv"
	"time"

	"movie-catalog/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

// Metrics records request count and latency per chi route pattern, so
// /movies/details/1 and /movies/details/2 share one series.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		metrics.RecordHTTPRequest(r.Method, route, strconv.Itoa(rw.statusCode), time.Since(start))
	})
}
