package errors

import "net/http"

// HTTPError is an error that already knows which HTTP status it maps to.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns an HTTPError with the given status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// NewBadRequest is shorthand for a 400 HTTPError.
func NewBadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// NewNotFound is shorthand for a 404 HTTPError.
func NewNotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

// NewInternal is shorthand for a 500 HTTPError.
func NewInternal(message string) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message)
}
