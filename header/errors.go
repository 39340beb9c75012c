package header

import (
	"errors"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/grammar"
)

// Error represents a header error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrEmptyInput is returned when a value required by the field grammar is empty.
	ErrEmptyInput = grammar.ErrEmptyInput
	// ErrMalformedInput is returned when a value does not match the field grammar.
	ErrMalformedInput = grammar.ErrMalformedInput
	// ErrInvalidArgument is returned when an invalid argument is provided.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrHashCollision is returned when a custom header name has the identity of a built-in header.
	ErrHashCollision Error = "header identity collision"
)

// ParseError is a failure to parse the value of the named header.
type ParseError struct {
	Name Name
	Err  error
}

func newParseError(name Name, err error) error {
	return &ParseError{Name: name, Err: err} //errtrace:skip
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "parse " + string(e.Name) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func isParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}
