package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the error type surfaced by services and handlers. Code is the
// HTTP status the error maps to, Message is the text returned to the client.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Op      string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InvalidInput marks a missing or empty required field.
func InvalidInput(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// InvalidFormat marks input that is present but unparseable, such as a URL
// with no recognizable video ID.
func InvalidFormat(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// Unavailable wraps a failure from an upstream backend (transcript service,
// completion API). Non-retryable; the message carries the backend's text.
func Unavailable(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// NoCredential means no API key was supplied and no process default is set.
func NoCredential(op string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "OpenAI API key not configured",
		Op:      op,
	}
}

func Internal(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// IsClientError reports whether err maps to a 4xx response, i.e. the caller
// can recover by fixing the input.
func IsClientError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code >= 400 && appErr.Code < 500
	}
	return false
}
