package client

import (
	"errors"
	"fmt"
)

// Kind classifies a failed cards lookup.
type Kind string

const (
	// KindRemoteUnavailable: the service could not be resolved or reached, or the
	// call was cancelled before a response arrived.
	KindRemoteUnavailable Kind = "remote_unavailable"

	// KindRemoteError: the service answered with a non-2xx status.
	KindRemoteError Kind = "remote_error"

	// KindDeserialization: a 2xx response whose body is not a JSON array of cards.
	KindDeserialization Kind = "deserialization_error"
)

// MaxErrorBodyBytes caps how much of a non-2xx response body is kept on Error.Body.
const MaxErrorBodyBytes = 4 << 10

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrRemoteUnavailable = &Error{Kind: KindRemoteUnavailable}
	ErrRemoteError       = &Error{Kind: KindRemoteError}
	ErrDeserialization   = &Error{Kind: KindDeserialization}
)

// Error is returned by every failed GetCardsDetails call.
type Error struct {
	Kind    Kind
	Service string
	Message string

	// StatusCode and Body are set for KindRemoteError only.
	StatusCode int
	Body       string

	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s [%s]: %s", e.Service, e.Kind, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, service, message string, err error) *Error {
	return &Error{Kind: kind, Service: service, Message: message, Err: err}
}

// KindOf extracts the Kind from err, or "" when err is not a cards client error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}
