package source

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is the kind of failures to reach or read a document.
	ErrIO = errors.New("io error")
	// ErrParse is the kind of failures to parse a document as JSON.
	ErrParse = errors.New("parse error")
	// ErrSchema is the kind of failures to interpret a manifest document.
	ErrSchema = errors.New("schema error")
)

// Error represents a document load failure.
type Error struct {
	Kind     error
	Location string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newError(kind error, location string, err error) *Error {
	return &Error{Kind: kind, Location: location, Err: err}
}
