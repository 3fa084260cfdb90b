package docnamer

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID        = "invalid"         // validation or caller contract failure
	EINTERNAL       = "internal"        // internal error or parser defect
	ENOTFOUND       = "not_found"       // root, page, or declaration not found
	ENOTIMPLEMENTED = "not_implemented" // feature not implemented
)

// Error represents an application error. Codes describe error classes the
// application cares about; messages are human-readable and safe to show to
// the end user.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("docnamer error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
