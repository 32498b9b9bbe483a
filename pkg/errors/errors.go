// Package errors defines the coded errors shared by the word sources, the CLI
// and the HTTP API.
//
// Every failure a caller may want to branch on carries a [Code]. Codes are
// stable strings, so they can be printed, logged and returned in JSON bodies:
//
//	err := errors.New(errors.ErrCodeInvalidTheme, "theme too long: %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidTheme) {
//	    ...
//	}
//
// [Wrap] keeps the cause reachable through the standard errors.Is and
// errors.As, and [Code.HTTPStatus] maps a code to a response status.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidTheme    Code = "INVALID_THEME"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidResponse Code = "INVALID_RESPONSE" // the word generator answered with something unusable

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeNetwork      Code = "NETWORK_ERROR"
	ErrCodeTimeout      Code = "TIMEOUT"
	ErrCodeRateLimited  Code = "RATE_LIMITED"
	ErrCodeUnauthorized Code = "UNAUTHORIZED"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// HTTPStatus returns the response status for errors with code c. Unknown and
// empty codes are internal errors.
func (c Code) HTTPStatus() int {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidTheme:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeNetwork, ErrCodeInvalidResponse:
		return http.StatusBadGateway
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is like New but records cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of a coded error without the code prefix
// and cause, or err.Error() for any other error.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// RateLimitedError is the cause attached to RATE_LIMITED errors from the
// word generator.
type RateLimitedError struct {
	RetryAfter time.Duration // zero when the server gave no hint
	Detail     string        // response body, if any
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
	}
	return "rate limited"
}
