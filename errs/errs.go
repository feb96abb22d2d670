package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies every failure a handler can reply with
type Kind int

const (
	// KindStore is an unexpected store failure, reported as 500
	KindStore Kind = iota
	// KindMissingField is a request lacking required fields
	KindMissingField
	// KindBadRequest is malformed or rejected input
	KindBadRequest
	// KindUnauthorized is a failed token refresh or admin check
	KindUnauthorized
	// KindNotFound is an absent document, reported as 400
	KindNotFound
	// KindMethodNotSupported is a method the route does not serve
	KindMethodNotSupported
)

// Status is the http status code a Kind is reported with. Not found is
// reported as a plain bad request.
func (k Kind) Status() int {
	switch k {
	case KindMissingField, KindBadRequest, KindNotFound:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindMethodNotSupported:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindMissingField:
		return "missing field"
	case KindBadRequest:
		return "bad request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindMethodNotSupported:
		return "method not supported"
	default:
		return "store error"
	}
}

// Error is the single error type handlers return
type Error struct {
	Kind        Kind
	Description string
	Err         error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Description, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Description)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the http status code of the error
func (e *Error) Status() int {
	return e.Kind.Status()
}

// MissingField names every absent field
func MissingField(names ...string) *Error {
	return &Error{
		Kind:        KindMissingField,
		Description: fmt.Sprintf("missing required field(s): %s", strings.Join(names, ", ")),
	}
}

// BadRequest is malformed input that is not a missing field
func BadRequest(description string) *Error {
	return &Error{Kind: KindBadRequest, Description: description}
}

// Unauthorized covers failed token refreshes and failed admin checks
func Unauthorized(description string) *Error {
	return &Error{Kind: KindUnauthorized, Description: description}
}

// NotFound is returned when a document is absent
func NotFound(description string) *Error {
	return &Error{Kind: KindNotFound, Description: description}
}

// Store wraps an unexpected store failure
func Store(description string, err error) *Error {
	return &Error{Kind: KindStore, Description: description, Err: err}
}

// MethodNotSupported is returned for a method a route does not serve
func MethodNotSupported(method string) *Error {
	return &Error{Kind: KindMethodNotSupported, Description: method}
}

// From maps any error to an *Error. Unknown errors become store errors.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Store("unexpected error", err)
}
