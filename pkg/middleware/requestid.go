package middleware

import (
	"net/http"

	"movie-catalog/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses a well-formed upstream X-Request-ID or generates one, and
// exposes it on the response and in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if !utils.IsRequestID(requestID) {
			requestID = utils.GenerateRequestID()
		}

		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(utils.SetRequestIDContext(r.Context(), requestID)))
	})
}
