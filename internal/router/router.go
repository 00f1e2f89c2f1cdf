// Package router builds the echo instance: the global middleware chain,
// the error handler and every route.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/employees-api/internal/handler"
	"github.com/deppfellow/employees-api/internal/middleware"
	"github.com/deppfellow/employees-api/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: tracing and the request id must exist before the
	// request-scoped logger is built, and the logger before anything logs.
	router.Use(
		middlewares.Tracing.NewRelicMiddleware(),
		middleware.RequestID(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerEmployeeRoutes(router, h)

	return router
}
