package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	CodeInternal         ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput     ErrorCode = "INVALID_INPUT"
	CodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	CodeLLMServiceError  ErrorCode = "LLM_SERVICE_ERROR"
	CodeRateLimited      ErrorCode = "RATE_LIMITED"
)

// Fixed client-facing messages.
const (
	MsgKeywordRequired  = "keyword is required"
	MsgMethodNotAllowed = "Method not allowed"
	MsgTooManyRequests  = "too many requests"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil && e.Cause.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewKeywordRequiredError() *DomainError {
	return NewInvalidInputError(MsgKeywordRequired)
}

func NewMethodNotAllowedError() *DomainError {
	return NewError(CodeMethodNotAllowed, MsgMethodNotAllowed, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// NewLLMServiceError wraps an upstream failure. The cause's text becomes the
// client-facing message so callers see what actually went wrong.
func NewLLMServiceError(cause error) *DomainError {
	msg := "upstream request failed"
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}
	return NewError(CodeLLMServiceError, msg, cause)
}

// IsCode reports whether err is a DomainError carrying code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}
