package parser

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is; use errors.As on *Error for the details.
var (
	ErrEmptyInput           = errors.New("empty input")
	ErrMalformedNumber      = errors.New("malformed number")
	ErrRowLengthMismatch    = errors.New("row length mismatch")
	ErrInsufficientData     = errors.New("insufficient data")
	ErrVectorLengthMismatch = errors.New("vector length mismatch")
)

// Error describes why a text could not be parsed into a linear system.
// Fields not relevant to the Kind are left zero.
type Error struct {
	Kind     error
	Line     int    // 1-based physical line, 0 when the error is not tied to a line
	Token    string // offending token (ErrMalformedNumber)
	Expected int
	Actual   int
	Err      error // underlying cause (ErrMalformedNumber)
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrMalformedNumber:
		return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Kind, e.Token, e.Err)
	case ErrRowLengthMismatch:
		return fmt.Sprintf("line %d: %s: expected %d values, got %d", e.Line, e.Kind, e.Expected, e.Actual)
	case ErrInsufficientData:
		return fmt.Sprintf("%s: need %d coefficients, got %d", e.Kind, e.Expected, e.Actual)
	case ErrVectorLengthMismatch:
		return fmt.Sprintf("%s: expected %d right-hand side values, got %d", e.Kind, e.Expected, e.Actual)
	default:
		return e.Kind.Error()
	}
}

// Is matches the error kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}
