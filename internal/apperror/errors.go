package apperror

import (
	"fmt"
	"net/http"
)

type Type int

const (
	TypeValidation Type = iota // 400
	TypeNotFound               // 404
	TypeForbidden              // 403
	TypeInternal               // 500
)

type Error struct {
	Type    Type
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Level reports the alert level an error should be shown with: client
// mistakes are warnings, everything else is an error.
func (e *Error) Level() string {
	if e.Type == TypeValidation {
		return "WARNING"
	}
	return "ERROR"
}

func Validation(field, message string) *Error {
	return &Error{Type: TypeValidation, Message: message, Field: field}
}

func NotFound(entity string) *Error {
	return &Error{Type: TypeNotFound, Message: fmt.Sprintf("%s not found", entity)}
}

func Forbidden(message string) *Error {
	return &Error{Type: TypeForbidden, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Type: TypeInternal, Message: message, Err: err}
}

func HTTPStatus(err *Error) int {
	switch err.Type {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
