package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/employees-api/internal/handler"
)

func registerEmployeeRoutes(r *echo.Echo, h *handler.Handlers) {
	employees := r.Group("/employees")

	employees.GET("", handler.Handle(h.Handler, h.Employee.ListEmployees, http.StatusOK))
	employees.POST("", handler.Handle(h.Handler, h.Employee.CreateEmployee, http.StatusOK))

	employees.GET("/:id", handler.Handle(h.Handler, h.Employee.GetEmployee, http.StatusOK))
	employees.PUT("/:id", handler.Handle(h.Handler, h.Employee.UpdateEmployee, http.StatusOK))
	employees.DELETE("/:id", handler.Handle(h.Handler, h.Employee.DeleteEmployee, http.StatusOK))
}
