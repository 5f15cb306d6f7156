package result

import "net/http"

// OperationResult is the uniform outcome envelope returned by every service
// operation. Anticipated failures (not-found, conflict, validation) are
// represented in-band; transport adapters translate the envelope into a
// protocol response using StatusCode and ErrorMessage.
type OperationResult[T any] struct {
	Success      bool   `json:"success"`
	Data         T      `json:"data"`
	ErrorMessage string `json:"error_message,omitempty"`
	StatusCode   int    `json:"status_code"`
}

// Ok wraps data in a success envelope with the default success code.
func Ok[T any](data T) OperationResult[T] {
	return OperationResult[T]{
		Success:    true,
		Data:       data,
		StatusCode: http.StatusOK,
	}
}

// Fail builds a failure envelope carrying an arbitrary status code.
func Fail[T any](message string, statusCode int) OperationResult[T] {
	return OperationResult[T]{
		Success:      false,
		ErrorMessage: message,
		StatusCode:   statusCode,
	}
}

// NotFound builds a failure envelope for a missing entity.
func NotFound[T any](message string) OperationResult[T] {
	return Fail[T](message, http.StatusNotFound)
}

// BadRequest builds a failure envelope for invalid caller input.
func BadRequest[T any](message string) OperationResult[T] {
	return Fail[T](message, http.StatusBadRequest)
}

// Conflict builds a failure envelope for a violated uniqueness rule.
func Conflict[T any](message string) OperationResult[T] {
	return Fail[T](message, http.StatusConflict)
}
