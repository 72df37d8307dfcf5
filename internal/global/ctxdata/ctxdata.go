package ctxdata

import (
	"context"

	"gitlab.com/exreview.net/internal/domain"
)

type userKey struct{}

var userKeyInstance = userKey{}

// WithUser attaches the acting user to the request context
func WithUser(ctx context.Context, user *domain.Users) context.Context {
	return context.WithValue(ctx, userKeyInstance, user)
}

// GetUser returns the acting user, falling back to the guest sentinel when
// no middleware has attached one.
func GetUser(ctx context.Context) *domain.Users {
	v := ctx.Value(userKeyInstance)
	user, ok := v.(*domain.Users)
	if !ok || user == nil {
		return domain.GuestUser()
	}
	return user
}
