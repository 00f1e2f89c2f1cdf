// Package sqlerr translates PostgreSQL driver errors into API errors.
//
// Repositories pass every failed statement through HandleError so that a
// missing row, a constraint violation or an unexpected server error all
// reach the client as a consistent *errs.HTTPError.
package sqlerr
