package gen

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaError reports a type that cannot be turned into statement methods.
// Cause holds the sqlcrud sentinel, such as sqlcrud.ErrMultipleIDs.
type SchemaError struct {
	Type    string // Go type name
	Field   string // column name, if any
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	subject := "type " + e.Type
	if e.Type == "" {
		subject = "schema"
	}
	if e.Field != "" {
		subject += " column " + e.Field
	}
	return describe(subject, e.Message, e.Cause)
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// NewSchemaError creates a new SchemaError.
func NewSchemaError(typeName, column, message string, cause error) *SchemaError {
	return &SchemaError{Type: typeName, Field: column, Message: message, Cause: cause}
}

// ConfigError reports an invalid generator option.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("sqlcrud: option %q set to %q: %s", e.Option, fmt.Sprint(e.Value), e.Message)
	}
	return fmt.Sprintf("sqlcrud: option %q: %s", e.Option, e.Message)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// GenerationError reports a failure while cleaning up or writing the
// generated files. Phase is one of "statements", "assert" or "cleanup".
type GenerationError struct {
	Phase   string
	File    string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	subject := e.Phase
	if e.File != "" {
		subject += " " + e.File
	}
	return describe(subject, e.Message, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{Phase: phase, File: file, Message: message, Cause: cause}
}

// ValidationError reports a generated identifier or file name that clashes
// with another type of the graph.
type ValidationError struct {
	Type    string
	Field   string // clashing identifier
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	subject := "type " + e.Type
	if e.Field != "" {
		subject += " identifier " + e.Field
	}
	if e.Value != nil {
		subject += fmt.Sprintf(" (%v)", e.Value)
	}
	return describe(subject, e.Message, nil)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(typeName, ident string, value any, message string) *ValidationError {
	return &ValidationError{Type: typeName, Field: ident, Value: value, Message: message}
}

// describe formats "sqlcrud: subject: message: cause", leaving out the
// empty parts.
func describe(subject, message string, cause error) string {
	var b strings.Builder
	b.WriteString("sqlcrud: ")
	b.WriteString(strings.TrimSpace(subject))
	if message != "" {
		b.WriteString(": ")
		b.WriteString(message)
	}
	if cause != nil {
		b.WriteString(": ")
		b.WriteString(cause.Error())
	}
	return b.String()
}

// IsSchemaError reports whether err wraps a SchemaError.
func IsSchemaError(err error) bool {
	var e *SchemaError
	return errors.As(err, &e)
}

// IsConfigError reports whether err wraps a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsGenerationError reports whether err wraps a GenerationError.
func IsGenerationError(err error) bool {
	var e *GenerationError
	return errors.As(err, &e)
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}
