package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned by sign-in when the email is unknown
// or the password does not match. The two cases are deliberately not
// distinguished.
var ErrInvalidCredentials = errors.New("invalid login credentials")

// ErrProfileNotFound is returned by sign-in when a credential points at a
// profile that no longer exists.
var ErrProfileNotFound = errors.New("profile not found")

// ErrDuplicateEmail is returned when creating or updating a credential
// would violate email uniqueness.
type ErrDuplicateEmail struct {
	Email string
}

func (e *ErrDuplicateEmail) Error() string {
	return fmt.Sprintf("a user with email %s already exists", e.Email)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}
