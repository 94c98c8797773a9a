// Package errs provides standardized error types for the store application's
// infrastructure layer. Domain invariant violations are modeled as
// notifications (see internal/pkg/notifications); the types here cover
// everything else: missing lookups, malformed values crossing a boundary,
// invalid state transitions.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
package errs
