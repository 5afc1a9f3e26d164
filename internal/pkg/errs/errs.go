package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValueIsRequired signals that a mandatory value is missing or blank.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid signals that a value violates a business rule.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrAlreadyExists signals that an equivalent object is already stored.
	ErrAlreadyExists = errors.New("already exists")

	// ErrObjectNotFound signals that a referenced object does not exist in storage.
	ErrObjectNotFound = errors.New("object not found")
)

// ValueIsRequiredError is returned when a mandatory value is missing.
// The message describes which value (or values) were expected.
type ValueIsRequiredError struct {
	Message string
	Cause   error
}

// NewValueIsRequiredError creates a ValueIsRequiredError with the given message.
func NewValueIsRequiredError(message string) *ValueIsRequiredError {
	return &ValueIsRequiredError{Message: message}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(message string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{Message: message, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return format(ErrValueIsRequired, e.Message, e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError is returned when a value violates a business rule.
// The message names the violated rule in human-readable form.
type ValueIsInvalidError struct {
	Message string
	Cause   error
}

// NewValueIsInvalidError creates a ValueIsInvalidError with the given message.
func NewValueIsInvalidError(message string) *ValueIsInvalidError {
	return &ValueIsInvalidError{Message: message}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(message string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{Message: message, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return format(ErrValueIsInvalid, e.Message, e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// AlreadyExistsError is returned when creating an object whose identity
// duplicates one already in storage.
type AlreadyExistsError struct {
	Message string
	Cause   error
}

// NewAlreadyExistsError creates an AlreadyExistsError with the given message.
func NewAlreadyExistsError(message string) *AlreadyExistsError {
	return &AlreadyExistsError{Message: message}
}

// NewAlreadyExistsErrorWithCause creates an AlreadyExistsError wrapping an underlying cause.
func NewAlreadyExistsErrorWithCause(message string, cause error) *AlreadyExistsError {
	return &AlreadyExistsError{Message: message, Cause: cause}
}

func (e *AlreadyExistsError) Error() string {
	return format(ErrAlreadyExists, e.Message, e.Cause)
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// ObjectNotFoundError is returned by repositories when a lookup by identifier
// finds nothing. Domain services translate it into an absent result; it is not
// part of the validation taxonomy.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// IsValidationError reports whether err represents a business-rule violation
// (required value missing, invalid value, or duplicate identity), as opposed
// to absence or an infrastructure failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrAlreadyExists)
}

func format(sentinel error, message string, cause error) string {
	if cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", sentinel, message, cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", sentinel, message))
}

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}
