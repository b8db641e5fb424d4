package execution

import (
	"errors"
	"fmt"
)

var (
	// ErrShape marks a structural failure: wrong token count, an unknown base
	// command, or a positional slot that fails its type or range predicate.
	ErrShape = errors.New("shape error")
	// ErrValue marks a flag whose trailing value fails to parse or falls
	// outside its declared bounds.
	ErrValue = errors.New("value error")
)

// Error describes a failed generation or parse. Index is the offending token
// position, or -1 when the failure is not tied to a token.
type Error struct {
	Kind   error
	Index  int
	Token  string
	Reason string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	kind := "error"
	if e.Kind != nil {
		kind = e.Kind.Error()
	}
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", kind, e.Reason)
	}
	return fmt.Sprintf("%s at token %d (%q): %s", kind, e.Index, e.Token, e.Reason)
}

// Unwrap returns the kind sentinel so callers can use errors.Is.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// ShapeError builds an ErrShape failure.
func ShapeError(index int, token, format string, args ...any) *Error {
	return &Error{Kind: ErrShape, Index: index, Token: token, Reason: fmt.Sprintf(format, args...)}
}

// ValueError builds an ErrValue failure.
func ValueError(index int, token, format string, args ...any) *Error {
	return &Error{Kind: ErrValue, Index: index, Token: token, Reason: fmt.Sprintf(format, args...)}
}
