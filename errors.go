package sqlcrud

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for schema failures.
var (
	// ErrNotStruct is returned when a record shape is not a struct type.
	ErrNotStruct = errors.New("sqlcrud: not a struct type")

	// ErrMissingID is returned when an identifier statement is requested for
	// a type that has no identifier field.
	ErrMissingID = errors.New("sqlcrud: no id field")

	// ErrMultipleIDs is returned when more than one field is marked as the
	// identifier.
	ErrMultipleIDs = errors.New("sqlcrud: multiple id fields")

	// ErrNoFields is returned when a type has no columns.
	ErrNoFields = errors.New("sqlcrud: no fields")

	// ErrDuplicateField is returned when two fields map to the same column.
	ErrDuplicateField = errors.New("sqlcrud: duplicate field")

	// ErrInvalidColumn is returned when a column name is not a plain SQL
	// identifier.
	ErrInvalidColumn = errors.New("sqlcrud: invalid column name")
)

// IDError represents an identifier cardinality failure.
type IDError struct {
	label string
	count int // number of fields marked as id
}

// Error returns the error string.
func (e *IDError) Error() string {
	if e.count == 0 {
		return fmt.Sprintf("sqlcrud: %s has no id field", e.label)
	}
	return fmt.Sprintf("sqlcrud: %s has %d id fields, expected 1", e.label, e.count)
}

// Is reports whether the target error matches the sentinel for the count.
// This allows errors.Is(err, ErrMissingID) and errors.Is(err, ErrMultipleIDs).
func (e *IDError) Is(err error) bool {
	switch err {
	case ErrMissingID:
		return e.count == 0
	case ErrMultipleIDs:
		return e.count > 1
	}
	return false
}

// Label returns the type name.
func (e *IDError) Label() string {
	return e.label
}

// Count returns the number of identifier fields found.
func (e *IDError) Count() int {
	return e.count
}

// NewIDError returns a new IDError for a type with count identifier fields.
func NewIDError(label string, count int) *IDError {
	return &IDError{label: label, count: count}
}

// IsIDError returns a boolean indicating whether the error is an identifier
// cardinality error.
func IsIDError(err error) bool {
	if err == nil {
		return false
	}
	var e *IDError
	return errors.As(err, &e) || errors.Is(err, ErrMissingID) || errors.Is(err, ErrMultipleIDs)
}

// FieldError wraps a failure on a single field of a type.
type FieldError struct {
	Label string // type name
	Name  string // field or column name
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("sqlcrud: field %q of %s: %s", e.Name, e.Label, e.Err)
}

// Unwrap implements the errors.Wrapper interface.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError returns a new FieldError.
func NewFieldError(label, name string, err error) *FieldError {
	return &FieldError{Label: label, Name: name, Err: err}
}

// IsFieldError returns a boolean indicating whether the error is a field error.
func IsFieldError(err error) bool {
	if err == nil {
		return false
	}
	var e *FieldError
	return errors.As(err, &e)
}
