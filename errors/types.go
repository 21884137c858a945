package errors

import (
	"net/http"
	"strconv"
)

// Constructors for the statuses the papeleria backend actually answers with.

func BadRequest(format string, args ...any) *Error {
	return New(http.StatusBadRequest, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return New(http.StatusNotFound, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return New(http.StatusConflict, format, args...)
}

func UnprocessableEntity(format string, args ...any) *Error {
	return New(http.StatusUnprocessableEntity, format, args...)
}

func Internal(format string, args ...any) *Error {
	return New(http.StatusInternalServerError, format, args...)
}

func ServiceUnavailable(format string, args ...any) *Error {
	return New(http.StatusServiceUnavailable, format, args...)
}

// IsClientError reports whether code is in the 4xx range.
func IsClientError(code int) bool {
	return code >= 400 && code < 500
}

// IsServerError reports whether code is 5xx or above.
func IsServerError(code int) bool {
	return code >= 500
}

// Class returns the status family of code ("2xx", "4xx", "5xx", ...) or
// "none" for non-positive codes.
func Class(code int) string {
	if code <= 0 {
		return "none"
	}
	return strconv.Itoa(code/100) + "xx"
}
