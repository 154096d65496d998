// Package apperrors defines the sentinel errors shared by the intake and
// review services and their HTTP mapping.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means no caller identity was supplied.
	ErrUnauthorized = errors.New("caller identity required")

	// ErrForbidden means the caller lacks the administrative role.
	ErrForbidden = errors.New("operation not allowed for the current user")

	// ErrNotFound means the target row does not exist.
	ErrNotFound = errors.New("requested resource not found")

	// ErrInvalidState means the entity is not in the state the requested
	// transition needs, including a second approval of the same application.
	ErrInvalidState = errors.New("entity is not in the required state")

	// ErrAlreadyPending means the user already has an application in review.
	ErrAlreadyPending = errors.New("a pending application already exists")

	// ErrValidation covers malformed input: bad date ranges, missing
	// required fields.
	ErrValidation = errors.New("validation failed")
)

// Validationf wraps ErrValidation with a specific message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// NotFoundf wraps ErrNotFound with the entity that was looked up.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}
