package scope

import (
	"context"

	"portfolio-srv/internal/model"
)

type contextKey struct{}

// Payload is the verified token payload used to build a request scope.
type Payload struct {
	UserID    string
	Subject   string
	Username  string
	Role      string
	Issuer    string
	ID        string
	IssuedAt  int64
	ExpiresAt int64
}

// NewScope creates a request scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}
	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// SetScopeToContext attaches the scope to the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, contextKey{}, sc)
}

// GetScopeFromContext returns the scope attached by the auth middleware.
// A zero scope means the request was not authenticated.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(contextKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
