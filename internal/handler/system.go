package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/employees-api/internal/model"
	"github.com/deppfellow/employees-api/internal/server"
)

// InfoMessage is returned by GET /.
const InfoMessage = "Employees API is live"

type SystemHandler struct {
	Handler
}

func NewSystemHandler(s *server.Server) *SystemHandler {
	return &SystemHandler{
		Handler: NewHandler(s),
	}
}

// Info confirms the process is up. It never touches the database.
func (h *SystemHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, model.MessageResponse{Message: InfoMessage})
}
