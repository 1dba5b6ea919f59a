// Package errs provides the standardized error types used across the
// catering application.
//
// The taxonomy mirrors the business rules of the order workflow:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or out-of-range input, surfaced to the caller and never retried
//   - InvalidStateError: a lifecycle transition that is not permitted from the
//     current status, or a payment gate that is not yet met
//   - ObjectAlreadyExistsError: duplicate creation attempts (for example a
//     second schedule assignment for the same order); always a rejection
//   - ObjectNotFoundError: unknown order, schedule, or staff reference
//
// Each type follows the same pattern: a sentinel error variable for
// classification with errors.Is, a struct carrying the offending details,
// constructors with and without a cause, and Unwrap support. Handlers map
// the sentinels to transport status codes in exactly one place.
package errs
