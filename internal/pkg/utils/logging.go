package utils

import (
	"appointment-service/internal/pkg/constvars"
	"context"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

// DetachedContext carries the request ID of ctx into a fresh background
// context, so a usecase timeout is not tied to the client connection.
func DetachedContext(ctx context.Context) context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, GetRequestID(ctx))
}
