// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so callers can classify errors with errors.Is
//
// The taxonomy maps onto the order API as follows: ValueIsRequiredError and
// ValueIsInvalidError are caller mistakes (bad input), ObjectNotFoundError is a
// missing or soft-deleted aggregate, InvalidTransitionError is an illegal
// status change, and ConflictError covers order number collisions and stale
// optimistic writes. Storage failures that fit none of these are propagated
// unwrapped.
package errs
