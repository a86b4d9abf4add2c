package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure. Every error that crosses a controller boundary
// carries exactly one kind, which fixes the HTTP status.
type Kind int

const (
	KindValidation   Kind = iota // malformed or missing input
	KindUnauthorized             // missing/invalid/expired token
	KindNotFound                 // no matching record
	KindServerConfig             // required secret/credential missing
	KindUpstream                 // backing-store call failed
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func ServerConfig(message string) *Error {
	return &Error{Kind: KindServerConfig, Message: message}
}

// Upstream wraps a failed backing-store call. The cause stays available for
// logs; clients only ever see the message.
func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// StatusOf maps an error to its HTTP status. Unknown errors are treated as
// internal failures.
func StatusOf(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
