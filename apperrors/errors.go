package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a concept failure. Every error a concept returns carries
// exactly one kind; the transport layer maps each kind to a stable HTTP status.
type Kind int

const (
	KindUnknown Kind = iota
	KindBadValues
	KindUnauthenticated
	KindNotAllowed
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindBadValues:
		return "BAD_VALUES"
	case KindUnauthenticated:
		return "UNAUTHENTICATED"
	case KindNotAllowed:
		return "NOT_ALLOWED"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	default:
		return "UNKNOWN"
	}
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func BadValues(format string, args ...interface{}) *Error {
	return &Error{Kind: KindBadValues, Message: fmt.Sprintf(format, args...)}
}

func Unauthenticated(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnauthenticated, Message: fmt.Sprintf(format, args...)}
}

func NotAllowed(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotAllowed, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind carried by err, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
