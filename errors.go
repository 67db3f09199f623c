package newsgrab

import (
	"errors"
	"fmt"
)

// Application error codes. They describe the class of failure so that the
// transport layer can map errors onto user-facing statuses without string
// matching.
const (
	EINVALID     = "invalid"     // malformed input (bad URL, unparseable HTML)
	EBLOCKED     = "blocked"     // upstream refused the request (HTTP 403)
	EUPSTREAM    = "upstream"    // upstream returned a non-200 status
	EUNAVAILABLE = "unavailable" // network failure, timeout, or upstream 5xx
	ENOTFOUND    = "not_found"   // nothing extractable (no articles, no title)
	EINTERNAL    = "internal"    // anything else
)

// Error represents an application error with a machine-readable code.
type Error struct {
	// Code is one of the constants above.
	Code string

	// Message is a human-readable description of the failure.
	Message string

	// Status carries the upstream HTTP status for EUPSTREAM errors.
	// Zero for every other code.
	Status int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("newsgrab error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL; a nil error returns "".
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
// Non-application errors always return "Internal error."; a nil error returns "".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ErrorStatus returns the upstream HTTP status attached to an EUPSTREAM
// error, or zero when the error carries none.
func ErrorStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// StatusErrorf is a helper function to return an EUPSTREAM Error carrying
// the upstream HTTP status.
func StatusErrorf(status int, format string, args ...any) *Error {
	return &Error{Code: EUPSTREAM, Status: status, Message: fmt.Sprintf(format, args...)}
}
