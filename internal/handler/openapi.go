package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/employees-api/internal/errs"
	"github.com/deppfellow/employees-api/internal/server"
	"github.com/deppfellow/employees-api/static"
)

// OpenAPIHandler serves the API documentation UI. The page loads its
// renderer from a CDN and reads /static/openapi.json.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI writes the embedded openapi.html with caching disabled.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	templateBytes, err := fs.ReadFile(static.Files, "openapi.html")
	if err != nil {
		return errs.NewInternalServerError().WithCause(fmt.Errorf("failed to read OpenAPI UI template: %w", err))
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
