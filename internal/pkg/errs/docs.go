// Package errs provides the error types shared by the order management service.
//
// Every error type follows the same shape:
//   - a sentinel error variable (ErrObjectNotFound, ErrValueIsInvalid, ...)
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//   - Unwrap returning the sentinel, so callers branch with errors.Is
//
// The HTTP adapter relies on ErrObjectNotFound to answer 404.
package errs
