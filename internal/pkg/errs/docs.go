// Package errs provides standardized error types for the banana export application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the scenarios the domain distinguishes:
//   - ValueIsRequiredError: for when a required value is missing or blank
//   - ValueIsInvalidError: for when a value violates a business rule
//   - AlreadyExistsError: for when an object duplicates a stored identity
//   - ObjectNotFoundError: for when an object cannot be found in storage
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrValueIsInvalid)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error classification via errors.Is
//
// The first three types form the validation taxonomy; IsValidationError groups
// them so the HTTP boundary can map business-rule violations to 400 responses
// while absence maps to 404 and everything else to 500.
package errs
