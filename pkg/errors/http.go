package errors

import "net/http"

// HTTPError is an error that carries the status code and public message it
// should be rendered with.
type HTTPError struct {
	Code       int
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError. Codes in the 100-599 range are used as the
// HTTP status directly; five digit codes carry the status in their first three
// digits (40901 -> 409).
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:       code,
		StatusCode: statusFromCode(code),
		Message:    message,
	}
}

func statusFromCode(code int) int {
	switch {
	case code >= 100 && code <= 599:
		return code
	case code >= 10000 && code <= 59999:
		return code / 100
	}
	return http.StatusBadRequest
}

var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests, slow down")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong, please try again")
)
