package cli

import (
	"errors"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
)

// userMessage maps an error to the text shown on screen. Server-provided
// messages are surfaced verbatim; everything unexpected degrades to a
// generic, retryable message. Nothing here is fatal.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrFieldsRequired):
		return "Please fill in all the fields."
	case errors.Is(err, domain.ErrInvalidEmail):
		return "Enter a valid email."
	case errors.Is(err, domain.ErrPasswordMismatch):
		return "Passwords do not match."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "Please log in first."
	case errors.Is(err, domain.ErrUserNotFound):
		return "User not found."
	case errors.Is(err, domain.ErrRecordNotFound):
		return "Record not found."
	case errors.Is(err, domain.ErrNothingStaged):
		return "Nothing staged to confirm."
	case errors.Is(err, domain.ErrDuplicateProduct):
		return "That product is already in the cart."
	}

	if msg, ok := domain.ServerMessage(err); ok {
		return msg
	}
	return "Something went wrong. Please try again."
}
