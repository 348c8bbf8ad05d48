package fourcc

import (
	"errors"
	"fmt"
)

// ErrorKind classifies input failures.
type ErrorKind int

const (
	MissingArgument ErrorKind = iota + 1 // no value supplied
	InvalidInput                         // not a base-10 non-negative integer
	OutOfRange                           // outside [0, 4294967295]
)

func (k ErrorKind) String() string {
	switch k {
	case MissingArgument:
		return "missing argument"
	case InvalidInput:
		return "invalid input"
	case OutOfRange:
		return "out of range"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error reports a rejected input value.
type Error struct {
	Kind   ErrorKind
	Input  string
	Reason string // overrides the default explanation when set
}

// Sentinels for errors.Is. Any *Error matches the sentinel of the same kind.
var (
	ErrMissingArgument = &Error{Kind: MissingArgument}
	ErrInvalidInput    = &Error{Kind: InvalidInput}
	ErrOutOfRange      = &Error{Kind: OutOfRange}
)

func (e *Error) Error() string {
	if e.Reason != "" {
		if e.Input == "" {
			return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
		}
		return fmt.Sprintf("%s %q: %s", e.Kind, e.Input, e.Reason)
	}
	switch e.Kind {
	case MissingArgument:
		return "missing argument: expected one decimal integer"
	case InvalidInput:
		return fmt.Sprintf("invalid input %q: expected a base-10 non-negative integer", e.Input)
	case OutOfRange:
		return fmt.Sprintf("value %s out of range: must be between 0 and %d", e.Input, MaxValue)
	default:
		return fmt.Sprintf("%s: %q", e.Kind, e.Input)
	}
}

// Is matches on Kind only, so wrapped errors compare equal to the sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the ErrorKind carried by err, or 0 if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
