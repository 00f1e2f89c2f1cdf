package service

import (
	"github.com/deppfellow/employees-api/internal/repository"
	"github.com/deppfellow/employees-api/internal/server"
)

// Services groups every service so they can be wired in one place.
type Services struct {
	Employee *EmployeeService
	Health   *HealthService
}

// NewServices builds the services from the repositories and the server's
// database provider.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Employee: NewEmployeeService(repos.Employee),
		Health:   NewHealthService(s.DB, s.Config.Observability.HealthChecks.Timeout),
	}
}
