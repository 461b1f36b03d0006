package audit

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the given request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// NewRequestID generates a UUID4 request id.
func NewRequestID() string {
	return uuid.New().String()
}

// LookupRequestID returns the request id stored in ctx, if any.
func LookupRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

// RequestIDFrom returns the request id stored in ctx, generating a fresh
// one for calls that did not come through the HTTP layer (CLI, scheduler).
func RequestIDFrom(ctx context.Context) string {
	if id, ok := LookupRequestID(ctx); ok {
		return id
	}
	return NewRequestID()
}
