// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the HTTP layer is funnelled into an *HTTPError
// so clients always receive the same JSON shape, whatever went wrong
// (bad payload, missing employee, unreachable database).
package errs
