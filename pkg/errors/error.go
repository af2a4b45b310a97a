// Package errors provides the coded errors returned by the simulation engine.
//
// Codes are grouped by the layer that raises them:
//   - General (1-99)
//   - Validation (100-199): bad construction parameters and configuration
//   - Data (200-299): price input that cannot be read or parsed
//   - Indicator (300-399)
//   - Strategy (400-499): unknown selector tags and strategy setup
//   - Backtest (600-699): engine runs and result output
//   - Metrics (900-999)
//
// Degenerate arithmetic (zero price, zero variance, zero drawdown) is not an
// error anywhere in the engine. It is reported through literal values such as
// NaN or a neutral 50.
//
// Usage:
//
//	err := errors.Newf(errors.ErrCodeUnsupportedStrategy, "unsupported strategy: %s", tag)
//	if errors.HasCode(err, errors.ErrCodeUnsupportedStrategy) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error is an error tagged with an ErrorCode.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap attaches a code and message to cause.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf attaches a code and formatted message to cause.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is is errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode returns the code of the first *Error in err's chain,
// or ErrCodeUnknown when there is none.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	var insufficientErr *InsufficientDataError
	if errors.As(err, &insufficientErr) {
		return insufficientErr.Code()
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// InsufficientDataError is returned when a calculation needs more points than
// it was given, e.g. a metric over a worth history with a single entry.
type InsufficientDataError struct {
	Required int
	Actual   int
	Message  string
}

// NewInsufficientDataErrorf creates a new InsufficientDataError with a formatted message.
func NewInsufficientDataErrorf(required, actual int, format string, args ...any) *InsufficientDataError {
	return &InsufficientDataError{
		Required: required,
		Actual:   actual,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Code returns ErrCodeInsufficientData.
func (e *InsufficientDataError) Code() ErrorCode {
	return ErrCodeInsufficientData
}

// Error implements the error interface.
func (e *InsufficientDataError) Error() string {
	return e.Message
}

// IsInsufficientDataError reports whether err's chain holds an InsufficientDataError.
func IsInsufficientDataError(err error) bool {
	var insufficientErr *InsufficientDataError

	return errors.As(err, &insufficientErr)
}
