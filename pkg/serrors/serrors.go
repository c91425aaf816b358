// Package serrors defines the closed set of semantic error kinds used across
// the job board and a wrapper error type that carries a kind, an optional
// cause and an optional message. Handlers match on kinds with errors.Is and
// map them to HTTP status codes at the transport boundary; internal error
// identity stays decoupled from the wire representation.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a marker interface implemented by the semantic kinds created with
// NewKind. It distinguishes kind sentinels from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind sentinel with the given name.
// Kinds are comparable and usable with errors.Is/As through the Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// The error taxonomy. Every failure surfaced to an HTTP handler is one of
// these kinds; anything unrecognized is treated as internal.
var (
	// ErrBadRequest indicates missing or invalid client input.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates a state conflict, such as a duplicate unique
	// field or a repeated application to the same posting.
	ErrConflict = NewKind("CONFLICT")
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing, invalid, expired or malformed
	// credentials. Token verification failures collapse into this kind
	// without distinguishing expired from malformed.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrTokenReused indicates a refresh token that does not match the single
	// persisted one: it was already rotated or manually invalidated, so the
	// presentation is treated as a possible replay.
	ErrTokenReused = NewKind("TOKEN_REUSED")
	// ErrInternal indicates an unexpected server-side failure.
	ErrInternal = NewKind("INTERNAL")
)

// HTTPStatus maps an error to the transport status code of its kind. The
// outermost semantic kind wins: a middleware that wraps a NotFound cause in
// Unauthorized must surface 401, not the status of the cause. Errors with no
// semantic kind anywhere in the chain map to 500.
func HTTPStatus(err error) int {
	var serr *Error
	if errors.As(err, &serr) && serr.Kind() != nil {
		return kindStatus(serr.Kind())
	}

	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrTokenReused):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func kindStatus(k Kind) int {
	switch k {
	case ErrBadRequest, ErrConflict:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	case ErrUnauthorized, ErrTokenReused:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message. errors.Is and errors.As match against both the kind
// sentinel and the wrapped cause.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind that wraps the
// provided cause.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As traversal.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches against either the kind sentinel or the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }
