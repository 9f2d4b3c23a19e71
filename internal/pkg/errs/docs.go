// Package errs provides standardized error types for the shipment-tracking
// gateway. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: a referenced entity is absent
//   - ObjectAlreadyExistsError: a uniqueness conflict surfaced as a domain error
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a numeric value lies outside its bounds
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Domain errors built from these types are translated at the HTTP boundary
// into the structured {error: {code, message}} payload; anything that does
// not unwrap to one of the sentinels propagates as a server fault.
package errs
