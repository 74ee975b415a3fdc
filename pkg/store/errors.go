package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the referenced resource id is
	// absent from the store.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized is returned when Verify is attempted by a
	// caller that is not the current admin, including when no admin
	// has ever been set.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAlreadyExists is reserved for future use. Ids are
	// store-assigned and never collide, so no current operation
	// returns it.
	ErrAlreadyExists = errors.New("resource already exists")
)

// ValidationError reports a field whose value violates its length
// bounds. It identifies which field failed and the violated bound.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
