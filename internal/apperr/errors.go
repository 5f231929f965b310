// Package apperr defines the error taxonomy shared by every layer. Use cases
// convert repository and adapter failures into one of these kinds; delivery
// handlers map the kind to an HTTP status with HTTPStatus.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindAlreadyExists
	KindAuthentication
	KindExternal
	KindDatabase
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(resource, identifier string) *Error {
	msg := resource + " not found"
	if identifier != "" {
		msg += ": " + identifier
	}
	return &Error{Kind: KindNotFound, Message: msg}
}

func AlreadyExists(resource, identifier string) *Error {
	msg := resource + " already exists"
	if identifier != "" {
		msg += ": " + identifier
	}
	return &Error{Kind: KindAlreadyExists, Message: msg}
}

func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

func External(service string, err error) *Error {
	return &Error{Kind: KindExternal, Message: "external service error: " + service, Err: err}
}

func Database(err error) *Error {
	return &Error{Kind: KindDatabase, Message: "database operation failed", Err: err}
}

// IsKind reports whether err carries the given taxonomy kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// HTTPStatus maps an error to its response status. External and database
// failures stay internal; anything outside the taxonomy is a 500.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExists:
		return http.StatusConflict
	case KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
