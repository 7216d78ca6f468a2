// Package errs defines the error types the API returns to clients.
//
// Every failure leaving a handler is (or is converted into) an *HTTPError
// so clients always receive the same JSON shape: a machine-readable code,
// a human-readable message, the HTTP status and optional field errors.
package errs
