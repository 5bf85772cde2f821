// Package domain defines the error taxonomy shared by the conversion
// pipeline and the CLI.
package domain

import "fmt"

// ErrorType classifies a domain error.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeGeometry     ErrorType = "geometry"
	ErrorTypeSizeMismatch ErrorType = "size_mismatch"
	ErrorTypeConversion   ErrorType = "conversion"
	ErrorTypeIO           ErrorType = "io"
	ErrorTypeConfig       ErrorType = "config"
)

// DomainError carries an error class, a message, and an optional cause.
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new domain error.
func NewError(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func ValidationError(message string, err error) *DomainError {
	return NewError(ErrorTypeValidation, message, err)
}

func GeometryError(message string, err error) *DomainError {
	return NewError(ErrorTypeGeometry, message, err)
}

func SizeMismatchError(message string, err error) *DomainError {
	return NewError(ErrorTypeSizeMismatch, message, err)
}

func ConversionError(message string, err error) *DomainError {
	return NewError(ErrorTypeConversion, message, err)
}

func IOError(message string, err error) *DomainError {
	return NewError(ErrorTypeIO, message, err)
}

func ConfigError(message string, err error) *DomainError {
	return NewError(ErrorTypeConfig, message, err)
}
