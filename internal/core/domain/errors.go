package domain

import "errors"

// Signup input errors. All are recoverable by the caller resubmitting
// corrected input; the HTTP layer renders them as 403.
var (
	ErrBadUsername       = errors.New("username must be at least 10 characters")
	ErrBadPassword       = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrDuplicateUsername = errors.New("username is already taken")
)

// Authentication and authorization errors, rendered as 401. Login failures
// collapse into ErrInvalidCredentials so callers cannot distinguish an
// unknown username from a wrong password.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotSignedIn        = errors.New("you are not signed in")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotAuthorized      = errors.New("you are not authorized to do this")
)

// IsInvalidUser reports whether err belongs to the signup-input error class.
func IsInvalidUser(err error) bool {
	return errors.Is(err, ErrBadUsername) ||
		errors.Is(err, ErrBadPassword) ||
		errors.Is(err, ErrPasswordMismatch) ||
		errors.Is(err, ErrDuplicateUsername)
}

// IsInvalidAuth reports whether err belongs to the authentication error class.
func IsInvalidAuth(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrNotSignedIn) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrNotAuthorized)
}
