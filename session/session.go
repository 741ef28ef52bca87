// Package session carries the authenticated identity of a call.
//
// The identity travels as an explicit context value supplied per call, never
// as mutable state on a client instance, so several sessions can drive the
// same service concurrently.
package session

import "context"

type Session struct {
	UserID string
}

type ctxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	if !ok || s.UserID == "" {
		return Session{}, false
	}
	return s, true
}
