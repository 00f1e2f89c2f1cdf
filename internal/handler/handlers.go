// Package handler is the HTTP layer: it binds and validates requests,
// calls the services and writes JSON responses.
package handler

import (
	"github.com/deppfellow/employees-api/internal/server"
	"github.com/deppfellow/employees-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Handler  Handler
	System   *SystemHandler
	Health   *HealthHandler
	Employee *EmployeeHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Handler:  NewHandler(s),
		System:   NewSystemHandler(s),
		Health:   NewHealthHandler(s, services.Health),
		Employee: NewEmployeeHandler(s, services.Employee),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
