// Package validation binds request payloads and validates them.
//
// It uses the `validator` library to enforce the rules declared in struct
// tags and converts validation failures into *errs.HTTPError values whose
// message names the first offending field.
package validation
