// Package store holds the fake gateway's user directory. The in-memory
// implementation is the default; a MongoDB-backed one is available when the
// fake should survive restarts.
package store

import (
	"context"
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrExists         = errors.New("email already registered")
	ErrBadCredentials = errors.New("invalid credentials")
)

// User is a directory account as the fake gateway stores it.
type User struct {
	ID           int64     `json:"id" bson:"_id"`
	FirstName    string    `json:"first_name" bson:"first_name"`
	LastName     string    `json:"last_name" bson:"last_name"`
	Email        string    `json:"email" bson:"email"`
	Username     string    `json:"username,omitempty" bson:"username,omitempty"`
	Role         string    `json:"role" bson:"role"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"-" bson:"created_at"`
}

// ListQuery parameterises a directory page. Roles filters to the given role
// set; SortDesc orders by descending id (newest first); Query, when
// non-empty, substring-matches name and email fields.
type ListQuery struct {
	Roles    []string
	SortDesc bool
	Limit    int
	Page     int
	Query    string
}

// Directory is the persistence boundary of the fake gateway.
type Directory interface {
	Authenticate(ctx context.Context, email, password string) (*User, error)
	CreateRequester(ctx context.Context, first, last, email, password string) (*User, error)
	List(ctx context.Context, q ListQuery) ([]User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
}
