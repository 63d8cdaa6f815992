package store

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a write is missing its row key.
var ErrInvalidArgument = errors.New("invalid argument")

// Error wraps a sentinel error with additional context
type Error struct {
	err     error
	context string
}

// Error satisfies the error interface
func (e *Error) Error() string {
	if e.context == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.err.Error(), e.context)
}

// Unwrap implements the errors.Unwrap interface for compatibility with errors.Is/As
func (e *Error) Unwrap() error {
	return e.err
}

func newError(err error, format string, args ...any) *Error {
	return &Error{
		err:     err,
		context: fmt.Sprintf(format, args...),
	}
}
