package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/employees-api/internal/handler"
	"github.com/deppfellow/employees-api/static"
)

// registerSystemRoutes registers the endpoints that are not about
// employees: info, health and documentation.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.System.Info)
	r.GET("/health", h.Health.CheckHealth)

	r.StaticFS("/static", static.Files)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
