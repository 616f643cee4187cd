package rules

import "fmt"

// Kind tags the variant of an Error.
type Kind string

const (
	// KindBadParameter marks a caller-supplied value that failed validation.
	KindBadParameter Kind = "BadParameter"
	// KindRejected marks a signing request the driver failed or the user declined.
	KindRejected Kind = "Rejected"
)

var (
	// ErrBadParameter matches any BadParameter error with errors.Is.
	ErrBadParameter = &Error{Kind: KindBadParameter}
	// ErrRejected matches any Rejected error with errors.Is.
	ErrRejected = &Error{Kind: KindRejected}
)

// Error is a tagged error raised by the framework.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

// BadParameter builds a BadParameter error.
func BadParameter(format string, args ...any) *Error {
	return &Error{Kind: KindBadParameter, Msg: fmt.Sprintf(format, args...)}
}

// Rejected wraps a driver failure, keeping its message verbatim.
func Rejected(cause error) *Error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{Kind: KindRejected, Msg: msg, Cause: cause}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
// A target carrying a message must match it too.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}
