package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is an error that already knows the HTTP status it maps to.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ForbiddenError rejects operator routes called without a valid API key.
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "Operator API key required"}

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// BadRequest converts a decoding or validation error into a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

// NotFound reports a missing booking or resource.
func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

// Conflict reports a slot that is already taken.
func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// Misconfigured reports a missing or broken backing resource, such as the
// bookings sheet or table.
func Misconfigured(format string, args ...any) error {
	return newFailure(http.StatusInternalServerError, fmt.Sprintf(format, args...))
}

// GetCode returns the status carried by err, or 500 for anything else.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}
