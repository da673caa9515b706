// Package utils provides general-purpose helper utilities
// used across different parts of the application:
// context keys, JSON response writing, the HTTP client wrapper
// and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key used to store the session identifier in the
// context of a web request.
//
//	ctx := context.WithValue(ctx, utils.SessionIDCtxKey, sess.ID)
var SessionIDCtxKey = contextKey("sessionID")

// GetSessionIDFromContext retrieves the session identifier from the context.
// ok is false when the value is missing, empty or of an unexpected type.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDCtxKey).(string)
	return id, ok && id != ""
}

// WithSessionID returns a copy of ctx carrying the session id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, id)
}
