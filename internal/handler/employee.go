package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/employees-api/internal/model"
	"github.com/deppfellow/employees-api/internal/model/employee"
	"github.com/deppfellow/employees-api/internal/server"
	"github.com/deppfellow/employees-api/internal/service"
)

// EmployeeHandler serves /employees. Its methods are typed endpoints meant
// to be wrapped with Handle.
type EmployeeHandler struct {
	Handler
	employees *service.EmployeeService
}

func NewEmployeeHandler(s *server.Server, employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:   NewHandler(s),
		employees: employees,
	}
}

func (h *EmployeeHandler) ListEmployees(c echo.Context, _ *employee.ListEmployeesPayload) ([]employee.Employee, error) {
	return h.employees.ListEmployees(c.Request().Context())
}

func (h *EmployeeHandler) GetEmployee(c echo.Context, payload *employee.GetEmployeeByIDPayload) (*employee.Employee, error) {
	return h.employees.GetEmployee(c.Request().Context(), payload.ID)
}

func (h *EmployeeHandler) CreateEmployee(c echo.Context, payload *employee.CreateEmployeePayload) (*employee.CreatedResponse, error) {
	return h.employees.CreateEmployee(c.Request().Context(), payload)
}

func (h *EmployeeHandler) UpdateEmployee(c echo.Context, payload *employee.UpdateEmployeePayload) (*model.MessageResponse, error) {
	msg, err := h.employees.UpdateEmployee(c.Request().Context(), payload)
	if err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: msg}, nil
}

func (h *EmployeeHandler) DeleteEmployee(c echo.Context, payload *employee.DeleteEmployeePayload) (*model.MessageResponse, error) {
	msg, err := h.employees.DeleteEmployee(c.Request().Context(), payload.ID)
	if err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: msg}, nil
}
