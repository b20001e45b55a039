package utils

import (
	"context"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
)

// GetRequestIDFromContext returns the id set by the RequestID middleware.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestIDVal := ctx.Value(RequestIDKey)
	if requestIDVal == nil {
		return "", false
	}

	requestID, ok := requestIDVal.(string)
	return requestID, ok && requestID != ""
}

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}
