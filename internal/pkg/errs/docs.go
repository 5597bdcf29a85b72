// Package errs holds the error taxonomy shared by the domain, the application
// handlers and the adapters.
//
// Every kind pairs a sentinel with a struct type:
//   - ErrValueIsRequired / ValueIsRequiredError: a mandatory input is missing
//   - ErrValueIsInvalid / ValueIsInvalidError: an input breaks a domain rule
//   - ErrValueIsOutOfRange / ValueIsOutOfRangeError: a number is outside its bounds
//   - ErrObjectNotFound / ObjectNotFoundError: an aggregate does not exist
//   - ErrVersionIsInvalid / VersionIsInvalidError: an optimistic write lost a race
//   - ErrConflict / ConflictError: a business rejection with a stable Code
//
// The struct types unwrap to their sentinel, so callers classify with
// errors.Is. ConflictError also matches another ConflictError with the same
// Code, which lets handlers test for route.ErrTransitionNotAllowed and similar
// values without comparing messages. The HTTP adapter maps the sentinels to
// status codes.
package errs
