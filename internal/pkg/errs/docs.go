// Package errs provides standardized error types for the orders service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the scenarios the service distinguishes:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value violates its bounds
//   - ObjectNotFoundError: For when an entity cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the error by its sentinel
//
// The HTTP adapter relies on the sentinels to map repository outcomes to
// response codes: ErrObjectNotFound becomes 404, the three value errors
// become 422, and everything else is treated as a store failure.
package errs
