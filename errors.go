package sortbench

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there is nothing to sort before any algorithm runs
	ErrEmptyInput = errors.New("empty input")
	// ErrNoResults is returned when exporting an empty result set, before any file is touched
	ErrNoResults = errors.New("no results to save")
)

// InputError represents a token that could not be parsed for the selected domain
type InputError struct {
	// Token is the offending raw token
	Token string
	// Line is the 1-based line number when reading from a file, 0 for manual input
	Line int
	// Cause is the underlying parse error
	Cause error
}

func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid integer %q on line %d: %v", e.Token, e.Line, e.Cause)
	}
	return fmt.Sprintf("invalid integer %q: %v", e.Token, e.Cause)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// NewInputError creates an InputError
func NewInputError(cause error, token string, line int) error {
	return &InputError{Token: token, Line: line, Cause: cause}
}

// UnsupportedDomainError is returned for element domains the engine cannot sort, such as images
type UnsupportedDomainError struct {
	// Domain is the name of the rejected domain
	Domain string
}

func (e *UnsupportedDomainError) Error() string {
	return fmt.Sprintf("sorting %s is not supported", e.Domain)
}

// NewUnsupportedDomainError creates an UnsupportedDomainError
func NewUnsupportedDomainError(domain string) error {
	return &UnsupportedDomainError{Domain: domain}
}

// ConfigError represents an error in configuration parameters
type ConfigError struct {
	// Field is the name of the configuration field that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %s", e.Field, e.Value, e.Reason)
}

// NewIOError wraps an underlying read or write failure with the operation and path involved
func NewIOError(err error, operation, path string) error {
	if path != "" {
		return fmt.Errorf("io error during %s on %s: %w", operation, path, err)
	}
	return fmt.Errorf("io error during %s: %w", operation, err)
}
