package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeValidation ErrorCode = "VALIDATION"
	ErrCodeNoContent  ErrorCode = "NO_CONTENT"
	ErrCodeDependency ErrorCode = "DEPENDENCY"
	ErrCodeInvalid    ErrorCode = "INVALID"
	ErrCodeInternal   ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation and lookup outcomes. The message strings are part of the
// public contract and must stay byte-for-byte stable.
var (
	ErrNoActive        = NewError(ErrCodeValidation, "Does not have active")
	ErrNoClient        = NewError(ErrCodeValidation, "Does not have client")
	ErrTypeMismatch    = NewError(ErrCodeValidation, "The Active is not enabled for the client")
	ErrActiveNoContent = NewError(ErrCodeNoContent, "Active No Content")
	ErrClientNoContent = NewError(ErrCodeNoContent, "Client No Content")
	ErrNoContent       = NewError(ErrCodeNoContent, "No Content")
	ErrPaymentNotFound = NewError(ErrCodeNotFound, "Not found")
	ErrInvalidPayload  = NewError(ErrCodeInvalid, "invalid payload")
)

// DependencyError classifies a store or remote failure, keeping the
// underlying error text as the outward-facing message.
func DependencyError(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: ErrCodeDependency, Message: err.Error(), Err: err}
}

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
