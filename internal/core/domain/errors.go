package domain

import (
	"errors"
	"fmt"
)

var (
	// Validation errors — raised before any I/O, always user-recoverable.
	ErrFieldsRequired   = errors.New("all fields are required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Auth/session errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Directory errors.
	ErrUserNotFound  = errors.New("user not found")
	ErrStaleResponse = errors.New("stale response discarded")

	// Local CRUD errors.
	ErrRecordNotFound = errors.New("record not found")
	ErrNothingStaged  = errors.New("no pending change staged")

	// Cart errors.
	ErrDuplicateProduct = errors.New("product already in cart")
)

// GatewayError carries a non-2xx response from the remote helpdesk gateway.
// Message is the server-provided message body when present, empty otherwise.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gateway returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway returned %d", e.StatusCode)
}

// ServerMessage extracts the server-provided message from err, if err wraps a
// GatewayError that carried one. Used to surface backend messages verbatim.
func ServerMessage(err error) (string, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) && ge.Message != "" {
		return ge.Message, true
	}
	return "", false
}
