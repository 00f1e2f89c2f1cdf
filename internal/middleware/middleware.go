// Package middleware holds the cross-cutting echo middleware: request ids,
// the request-scoped logger, request logging, panic recovery, secure
// headers, CORS, New Relic tracing and the global error handler.
package middleware
