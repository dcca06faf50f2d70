package apperror

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Service code wraps these; the API layer maps
// them to HTTP statuses and error_type strings.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrSelfFollow      = errors.New("self follow not allowed")
	ErrInvalidInput    = errors.New("invalid input")
)

// Error is a domain error with a caller-facing message.
type Error struct {
	Kind    error
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap makes the error kind matchable with errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Unauthenticated reports an unresolved credential.
func Unauthenticated() *Error {
	return &Error{
		Kind:    ErrUnauthenticated,
		Message: "user is not registered",
	}
}

// NotFound reports a missing entity, e.g. NotFound("tweet", 42).
func NotFound(entity string, id int64) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("%s %d not found", entity, id),
	}
}

// AlreadyExists reports a duplicate follow edge, like, or attachment link.
func AlreadyExists(message string) *Error {
	return &Error{
		Kind:    ErrAlreadyExists,
		Message: message,
	}
}

// SelfFollow reports an attempt to follow oneself.
func SelfFollow() *Error {
	return &Error{
		Kind:    ErrSelfFollow,
		Message: "you can't subscribe to yourself",
	}
}

// InvalidInput reports malformed caller input.
func InvalidInput(message string) *Error {
	return &Error{
		Kind:    ErrInvalidInput,
		Message: message,
	}
}
