package httpapi

import (
	"context"

	"github.com/shababna/engagement-api/internal/domain"
)

// AuthContext is the authenticated caller attached to a request by the
// auth middleware.
type AuthContext struct {
	ID    domain.ProfileID
	Email string
	Role  domain.Role
}

func (a AuthContext) IsAdmin() bool { return a.Role == domain.RoleAdmin }

type authKey struct{}

func WithAuth(ctx context.Context, a AuthContext) context.Context {
	return context.WithValue(ctx, authKey{}, a)
}

func AuthFromContext(ctx context.Context) (AuthContext, bool) {
	a, ok := ctx.Value(authKey{}).(AuthContext)
	return a, ok && a.ID != ""
}
