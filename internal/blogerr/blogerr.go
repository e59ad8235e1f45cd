// Package blogerr defines the small closed set of failure kinds surfaced by
// the blog tool. Errors stay message based for the user while callers and
// tests can match on the kind with errors.Is.
package blogerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	Unknown Kind = iota
	NotFound
	IoFailure
	ParseFailure
	DuplicateEntry
	MissingEntry
	RemoteServiceFailure
	Unimplemented
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case IoFailure:
		return "io failure"
	case ParseFailure:
		return "parse failure"
	case DuplicateEntry:
		return "duplicate entry"
	case MissingEntry:
		return "missing entry"
	case RemoteServiceFailure:
		return "remote service failure"
	case Unimplemented:
		return "unimplemented"
	default:
		return "unknown"
	}
}

// Sentinels, one per kind. errors.Is(err, ErrNotFound) reports whether any
// *Error in the chain has the NotFound kind.
var (
	ErrNotFound       = &Error{Kind: NotFound}
	ErrIO             = &Error{Kind: IoFailure}
	ErrParse          = &Error{Kind: ParseFailure}
	ErrDuplicate      = &Error{Kind: DuplicateEntry}
	ErrMissing        = &Error{Kind: MissingEntry}
	ErrRemote         = &Error{Kind: RemoteServiceFailure}
	ErrNotImplemented = &Error{Kind: Unimplemented}
)

// Error carries a kind, a human readable message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// New returns an error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an error of the given kind wrapping err.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches sentinels by kind. A target carrying a message only matches the
// exact same value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e == t {
		return true
	}
	return t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
