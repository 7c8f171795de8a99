// Package common defines shared sentinel errors used across satvocab layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Authentication failures surfaced to the user (see UserMessage).
	ErrInvalidFormat      = errors.New("invalid format")
	ErrDuplicateEmail     = errors.New("duplicate email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrHashingUnsupported = errors.New("hashing unsupported")

	// Service-level errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrorInternal       = errors.New("internal error")
)

// UserMessage maps an authentication failure to a short, non-technical
// message suitable for display. Unknown-email and wrong-password logins map
// to the same message on purpose, so the UI never reveals whether an email
// is registered.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidFormat):
		return "Please enter a valid email, a password of at least 6 characters, and a name."
	case errors.Is(err, ErrDuplicateEmail):
		return "An account with this email already exists."
	case errors.Is(err, ErrInvalidCredentials):
		return "Email or password is incorrect."
	case errors.Is(err, ErrHashingUnsupported):
		return "Secure sign-up is not available right now. Please try again later."
	case errors.Is(err, ErrNotAuthenticated):
		return "Please log in first."
	default:
		return "Something went wrong. Please try again."
	}
}
