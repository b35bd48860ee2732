package pkg

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// AppError is an error carrying the HTTP status and the stable code returned
// to API clients.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Fields     map[string]string
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

// NewValidationError reports field errors keyed by their dotted path.
func NewValidationError(fields map[string]string, status int) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: "Validation failed", HTTPStatus: status, Fields: fields}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError is the response body. The wrapped error is never exposed.
func (e *AppError) ToHTTPError() gin.H {
	body := gin.H{"code": e.Code, "message": e.Message}
	if len(e.Fields) > 0 {
		body["fields"] = e.Fields
	}
	return body
}
