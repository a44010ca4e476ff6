package errors

import (
	"fmt"
	"net/http"
)

// Error is the application error returned at every handler boundary. It
// carries the HTTP status so controllers can respond with c.JSON(e.Code, e);
// the wrapped cause stays out of the response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
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

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Validation marks a client fault in the request body (missing/malformed field).
func Validation(message string, err error) *Error {
	return New(http.StatusBadRequest, message, err)
}

// Upstream marks a payments/identity gateway failure.
func Upstream(message string, err error) *Error {
	return New(http.StatusBadGateway, message, err)
}

// Timeout marks a gateway call that outlived its deadline.
func Timeout(message string, err error) *Error {
	return New(http.StatusGatewayTimeout, message, err)
}
