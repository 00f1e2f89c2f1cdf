package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/employees-api/internal/middleware"
	"github.com/deppfellow/employees-api/internal/server"
	"github.com/deppfellow/employees-api/internal/service"
)

// HealthHandler reports whether the database is reachable.
type HealthHandler struct {
	Handler
	health *service.HealthService
}

func NewHealthHandler(s *server.Server, health *service.HealthService) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		health:  health,
	}
}

// CheckHealth always answers 200. An unreachable database is reported in
// the body as status "unhealthy" with the failure message.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	report := h.health.Check(c.Request().Context())
	duration := time.Since(start)

	if report.Healthy() {
		logger.Debug().
			Dur("response_time", duration).
			Msg("health check passed")
	} else {
		logger.Warn().
			Str("error", report.Error).
			Dur("response_time", duration).
			Msg("database health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":       "database",
				"operation":        "health_check",
				"error_type":       "database_unhealthy",
				"response_time_ms": duration.Milliseconds(),
				"error_message":    report.Error,
			})
		}
	}

	return c.JSON(http.StatusOK, report)
}
