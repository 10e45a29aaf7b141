package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed classification of API failures. Callers branch on
// Kind, never on raw status codes.
type Kind int

const (
	// KindNetwork means the request never completed.
	KindNetwork Kind = iota
	// KindAuth means the token is missing, invalid, or expired (401/403).
	KindAuth
	// KindValidation is any other 4xx; Message carries the server's text.
	KindValidation
	// KindServer is a 5xx.
	KindServer
)

// String returns a short label for the kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	}
	return "unknown"
}

// Error is a normalized API failure.
type Error struct {
	Kind    Kind
	Status  int // 0 for network errors
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s error (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// classify maps an HTTP status and server message onto the taxonomy.
func classify(status int, message string) *Error {
	var kind Kind
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = KindAuth
	case status >= 500:
		kind = KindServer
	default:
		kind = KindValidation
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{Kind: kind, Status: status, Message: message}
}

// netError wraps a transport failure.
func netError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "request failed", cause: err}
}

// ErrorKind extracts the Kind from err, or KindNetwork with false when
// err is not an API error.
func ErrorKind(err error) (Kind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return KindNetwork, false
}

// IsAuth reports whether err is an authentication/authorization failure.
func IsAuth(err error) bool {
	kind, ok := ErrorKind(err)
	return ok && kind == KindAuth
}

// IsValidation reports whether err is a non-auth client error.
func IsValidation(err error) bool {
	kind, ok := ErrorKind(err)
	return ok && kind == KindValidation
}

// Message returns the user-facing text for err: the server's verbatim
// message for validation/auth failures, a generic banner otherwise.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case KindNetwork:
			return "Could not reach the server. Check your connection and try again."
		case KindServer:
			return "The server hit an unexpected error. Try again in a moment."
		default:
			return apiErr.Message
		}
	}
	return err.Error()
}
