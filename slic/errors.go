package slic

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dzonerzy/go-slic/internal/pool"
)

// ErrorType is the closed set of parse failures. The zero value means
// success.
type ErrorType string

const (
	ErrorTypeNone               ErrorType = ""
	ErrorTypeMissingValue       ErrorType = "missing_value"
	ErrorTypeInvalidValue       ErrorType = "invalid_value"
	ErrorTypeUnknownOption      ErrorType = "unknown_option"
	ErrorTypeMissingRequiredArg ErrorType = "missing_required_arg"
	ErrorTypeTooManyArgs        ErrorType = "too_many_args"
)

// Message returns the human-readable text for the error type.
func (t ErrorType) Message() string {
	switch t { // exhaustive over ErrorType
	case ErrorTypeNone:
		return "Success"
	case ErrorTypeMissingValue:
		return "Missing value for option"
	case ErrorTypeInvalidValue:
		return "Invalid value"
	case ErrorTypeUnknownOption:
		return "Unknown option"
	case ErrorTypeMissingRequiredArg:
		return "Missing required argument"
	case ErrorTypeTooManyArgs:
		return "Too many arguments"
	default:
		return "Unknown error"
	}
}

// ParseError reports the first failure of a parse together with the token
// that caused it.
type ParseError struct {
	Type ErrorType
	// Context is the offending option name, value, token or slot name.
	Context string
	// Suggestion is a close declared option name, set for unknown options
	// when the parser has suggestions enabled.
	Suggestion string
}

// Sentinels for errors.Is. They match any *ParseError of the same type.
var (
	ErrMissingValue       = &ParseError{Type: ErrorTypeMissingValue}
	ErrInvalidValue       = &ParseError{Type: ErrorTypeInvalidValue}
	ErrUnknownOption      = &ParseError{Type: ErrorTypeUnknownOption}
	ErrMissingRequiredArg = &ParseError{Type: ErrorTypeMissingRequiredArg}
	ErrTooManyArgs        = &ParseError{Type: ErrorTypeTooManyArgs}
)

func newParseError(typ ErrorType, context string) *ParseError {
	return &ParseError{Type: typ, Context: context}
}

func (e *ParseError) Error() string {
	if e.Context == "" {
		return e.Type.Message()
	}
	return e.Type.Message() + " '" + e.Context + "'"
}

// Is matches sentinels by type. A target carrying a context only matches
// an error with the same context.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	if t.Type != e.Type {
		return false
	}
	return t.Context == "" || t.Context == e.Context
}

// FormatError renders err the way PrintError writes it, without the
// trailing newline. A nil error renders as "".
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	buf.WriteString("Error: ")
	buf.WriteString(err.Error())

	var pe *ParseError
	if errors.As(err, &pe) && pe.Suggestion != "" {
		fmt.Fprintf(buf, "\n  Did you mean '%s'?", pe.Suggestion)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// WriteError writes the formatted error followed by a newline. It writes
// nothing for a nil error.
func WriteError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, FormatError(err))
}
