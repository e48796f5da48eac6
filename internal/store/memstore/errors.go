package memstore

import "errors"

// ErrEmptyTitle is the constraint behind every ValidationError the store returns.
var ErrEmptyTitle = errors.New("title cannot be empty")

// ValidationError reports input rejected before any mutation took place.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying constraint error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
