package repository

import (
	"github.com/deppfellow/employees-api/internal/server"
)

// Repositories groups every repository so they can be wired in one place.
type Repositories struct {
	Employee *EmployeeRepository
}

// NewRepositories builds the repositories on top of the server's database provider.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Employee: NewEmployeeRepository(s.DB),
	}
}
