package ports

import (
	"context"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
)

// RegisterInput carries the user-supplied fields of a signup request. The
// fixed categorical parameters (scenario/category/panel) are owned by the
// gateway adapter, not the caller.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// ListUsersInput parameterises a directory page fetch. SearchQuery, when
// non-empty, is forwarded as the gateway's search-query filter.
type ListUsersInput struct {
	Token       string
	Page        int
	SearchQuery string
}

// Gateway is the remote helpdesk backend, seen strictly at its HTTP boundary.
type Gateway interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// Register creates a requester account. HTTP 200/201 are both success.
	Register(ctx context.Context, in RegisterInput) error
	// ForgotPassword requests a password-reset email.
	ForgotPassword(ctx context.Context, email string) error
	// ListUsers fetches one page of the user/agent directory, newest first.
	ListUsers(ctx context.Context, in ListUsersInput) ([]domain.UserRecord, error)
	// GetUser looks up a single directory record by identifier.
	GetUser(ctx context.Context, token string, id int64) (*domain.UserRecord, error)
}
