package transform

import (
	"errors"
	"fmt"
)

// Kind classifies a transform failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnknownOperation
	KindInvalidEncoding
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindUnknownOperation:
		return "unknown_operation"
	case KindInvalidEncoding:
		return "invalid_encoding"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Sentinel errors for errors.Is checks.
var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidEncoding  = errors.New("invalid encoding")
	ErrInvalidInput     = errors.New("invalid input")
)

// Error is returned by every failed transform.
type Error struct {
	Kind Kind
	Op   string // operation ID
	Msg  string // human-readable, shown in the panel
	Err  error  // underlying decoder/parser error, may be nil
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnknownOperation:
		return e.Kind == KindUnknownOperation
	case ErrInvalidEncoding:
		return e.Kind == KindInvalidEncoding
	case ErrInvalidInput:
		return e.Kind == KindInvalidInput
	}
	return false
}

// KindOf returns the Kind of err, or KindUnknown if err is not a *Error.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindUnknown
}

// Message returns the user-facing text of err: the Msg of a *Error without
// the operation prefix, or err.Error() otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var te *Error
	if errors.As(err, &te) {
		return te.Msg
	}
	return err.Error()
}

func invalidEncoding(msg string, err error) *Error {
	return &Error{Kind: KindInvalidEncoding, Msg: msg, Err: err}
}

func invalidInput(msg string, err error) *Error {
	return &Error{Kind: KindInvalidInput, Msg: msg, Err: err}
}
