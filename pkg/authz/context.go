package authz

import (
	"context"
	"log/slog"
)

// userCtxKey is a private type to prevent collisions with other context keys.
type userCtxKey struct{}

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// UserFromContext retrieves the authenticated user from the context.
func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(User)
	return user, ok
}

// MustUserFromContext retrieves the authenticated user from the context.
// Panics if no user is found. Use this only in code paths that run
// strictly behind authentication.
func MustUserFromContext(ctx context.Context) User {
	user, ok := UserFromContext(ctx)
	if !ok {
		panic("authz: no user in context")
	}
	return user
}

// LoggerExtractor returns a ContextExtractor for the logger that extracts
// the user id and role from context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if user, ok := UserFromContext(ctx); ok {
			return slog.Group("user",
				slog.String("id", user.ID.String()),
				slog.String("role", user.Role.String()),
			), true
		}
		return slog.Attr{}, false
	}
}
