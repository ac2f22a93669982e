package ports

import (
	"context"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
)

// AuthService orchestrates login/signup, token persistence, and logout.
type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Register(ctx context.Context, firstName, lastName, email, password, confirmPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	Logout(ctx context.Context) error
	// Restore loads a previously persisted token into the in-memory session.
	Restore(ctx context.Context) error
	Session() domain.Session
}

// TokenSource exposes the current bearer token to collaborators that issue
// authenticated requests. An empty string means unauthenticated.
type TokenSource interface {
	Token() string
}
