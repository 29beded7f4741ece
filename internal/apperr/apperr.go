package apperr

import (
	"errors"
	"fmt"
)

// Code classifies an application error.
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodePersistence     Code = "PERSISTENCE"
	CodeInternal        Code = "INTERNAL"
)

// Error is the error type returned by the stores.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Validation reports rejected input (empty or oversized text, blank identifiers).
func Validation(format string, args ...any) error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a lookup of an unknown id.
func NotFound(format string, args ...any) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Persistence wraps a durable storage read or write failure.
func Persistence(message string, cause error) error {
	return &Error{Code: CodePersistence, Message: message, Cause: cause}
}

// Wrap attaches a code and message to cause.
func Wrap(code Code, message string, cause error) error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

func IsValidation(err error) bool  { return err != nil && CodeOf(err) == CodeInvalidArgument }
func IsNotFound(err error) bool    { return err != nil && CodeOf(err) == CodeNotFound }
func IsPersistence(err error) bool { return err != nil && CodeOf(err) == CodePersistence }
