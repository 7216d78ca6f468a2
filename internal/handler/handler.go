// Package handler is the HTTP layer, the first stop after the router.
//
// It binds request bodies, validates them through the validation
// package, calls the service layer and maps service failures onto
// errs.HTTPError values for the global error handler.
package handler
