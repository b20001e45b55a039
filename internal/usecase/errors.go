package usecase

import (
	"errors"

	"movie-catalog/pkg/utils"
)

var (
	// ErrMovieNotFound covers a missing or malformed id, an unknown record
	// and a path/payload id mismatch on edit.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrEditConflict means the record still exists but was changed after
	// the client read it.
	ErrEditConflict = errors.New("movie was modified by another request")
)

// ValidationError rejects a payload before anything is persisted. Payload is
// the request as received so it can be shown again with Fields.
type ValidationError struct {
	Payload any
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}
