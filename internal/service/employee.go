package service

import (
	"context"

	"github.com/deppfellow/employees-api/internal/errs"
	"github.com/deppfellow/employees-api/internal/model/employee"
)

// EmployeeStore is the persistence the employee service needs.
// *repository.EmployeeRepository implements it against PostgreSQL.
type EmployeeStore interface {
	ListEmployees(ctx context.Context) ([]employee.Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (*employee.Employee, error)
	CreateEmployee(ctx context.Context, name string, salary int64) (int64, error)
	UpdateEmployee(ctx context.Context, id int64, name string, salary int64) (int64, error)
	DeleteEmployee(ctx context.Context, id int64) (int64, error)
}

const (
	MessageEmployeeAdded   = "Employee added"
	MessageEmployeeUpdated = "Employee updated"
	MessageEmployeeDeleted = "Employee deleted"
)

type EmployeeService struct {
	store EmployeeStore
}

func NewEmployeeService(store EmployeeStore) *EmployeeService {
	return &EmployeeService{store: store}
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	return s.store.ListEmployees(ctx)
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id int64) (*employee.Employee, error) {
	return s.store.GetEmployeeByID(ctx, id)
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, payload *employee.CreateEmployeePayload) (*employee.CreatedResponse, error) {
	id, err := s.store.CreateEmployee(ctx, payload.Name, *payload.Salary)
	if err != nil {
		return nil, err
	}

	return &employee.CreatedResponse{Message: MessageEmployeeAdded, ID: id}, nil
}

// UpdateEmployee fails with NotFound when no row has the payload's id.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, payload *employee.UpdateEmployeePayload) (string, error) {
	affected, err := s.store.UpdateEmployee(ctx, payload.ID, payload.Name, *payload.Salary)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", errs.NewEmployeeNotFoundError()
	}

	return MessageEmployeeUpdated, nil
}

// DeleteEmployee fails with NotFound when no row has id.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) (string, error) {
	affected, err := s.store.DeleteEmployee(ctx, id)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", errs.NewEmployeeNotFoundError()
	}

	return MessageEmployeeDeleted, nil
}
