// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
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

// UIDCtxKey is the key used to store the verified caller identifier in the
// context.
//
//	ctx := context.WithValue(ctx, utils.UIDCtxKey, "uid-123")
var UIDCtxKey = contextKey("uid")

// GetUIDFromContext retrieves the verified caller identifier from the context.
// ok is false when the value is missing, has an unexpected type, or is empty.
func GetUIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(UIDCtxKey).(string)
	return uid, ok && uid != ""
}

// WithUID returns a copy of ctx carrying uid.
func WithUID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, UIDCtxKey, uid)
}
