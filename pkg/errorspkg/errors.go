// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// Kind classifies an error so that callers can branch on it without parsing messages.
type Kind string

// Supported error kinds.
const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindConnectivity Kind = "connectivity"
	KindIntegrity    Kind = "integrity"
)

// Error is an error with a stable kind and a message meant for display.
type Error struct {
	Kind Kind
	Msg  string
}

// New returns a new Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func (e *Error) Error() string {
	return e.Msg
}

var (
	// ErrInternal indicates an unexpected storage-level failure.
	ErrInternal = New(KindIntegrity, "internal")
	// ErrConnectivity indicates that the storage is unreachable.
	ErrConnectivity = New(KindConnectivity, "storage unavailable")
)

// KindOf returns the kind of the first Error found in err's chain.
//
// Errors that carry no kind are reported as KindIntegrity.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindIntegrity
}
