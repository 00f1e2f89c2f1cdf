// Package validation binds and validates request payloads.
//
// Struct tag rules are enforced with go-playground/validator; binding and
// validation failures are turned into 422 *errs.HTTPError values carrying
// field-level errors the client can act on.
package validation
