package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/employees-api/internal/database"
	"github.com/deppfellow/employees-api/internal/model/employee"
	"github.com/deppfellow/employees-api/internal/sqlerr"
)

const (
	listEmployeesQuery = `
		SELECT id, name, salary
		FROM employees
		ORDER BY id`

	getEmployeeByIDQuery = `
		SELECT id, name, salary
		FROM employees
		WHERE id = $1`

	createEmployeeQuery = `
		INSERT INTO employees (name, salary)
		VALUES ($1, $2)
		RETURNING id`

	updateEmployeeQuery = `
		UPDATE employees
		SET name = $1, salary = $2
		WHERE id = $3`

	deleteEmployeeQuery = `
		DELETE FROM employees
		WHERE id = $1`
)

// EmployeeRepository executes the employees statements.
type EmployeeRepository struct {
	db *database.Database
}

func NewEmployeeRepository(db *database.Database) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// handleError tags err with the employees table and translates it.
func handleError(err error) error {
	return sqlerr.HandleError(sqlerr.WithTable(employee.TableName, err))
}

// ListEmployees returns every employee ordered by ascending id. An empty
// table yields an empty, non-nil slice.
func (r *EmployeeRepository) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	employees := []employee.Employee{}

	err := r.db.WithConn(ctx, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, listEmployeesQuery)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}

		collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[employee.Employee])
		if err != nil {
			return fmt.Errorf("failed to collect employees: %w", err)
		}

		employees = append(employees, collected...)
		return nil
	})
	if err != nil {
		return nil, handleError(err)
	}

	return employees, nil
}

// GetEmployeeByID returns the employee with id, or a 404 error when no row matches.
func (r *EmployeeRepository) GetEmployeeByID(ctx context.Context, id int64) (*employee.Employee, error) {
	var found *employee.Employee

	err := r.db.WithConn(ctx, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, getEmployeeByIDQuery, id)
		if err != nil {
			return fmt.Errorf("failed to get employee %d: %w", id, err)
		}

		// pgx.ErrNoRows when nothing matched; sqlerr turns it into a 404.
		found, err = pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[employee.Employee])
		return err
	})
	if err != nil {
		return nil, handleError(err)
	}

	return found, nil
}

// CreateEmployee inserts a row and returns the id generated by the store.
func (r *EmployeeRepository) CreateEmployee(ctx context.Context, name string, salary int64) (int64, error) {
	var id int64

	err := r.db.WithConn(ctx, func(conn *pgx.Conn) error {
		if err := conn.QueryRow(ctx, createEmployeeQuery, name, salary).Scan(&id); err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, handleError(err)
	}

	return id, nil
}

// UpdateEmployee overwrites name and salary of the employee with id and
// reports how many rows were affected (0 or 1).
func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, id int64, name string, salary int64) (int64, error) {
	var affected int64

	err := r.db.WithConn(ctx, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, updateEmployeeQuery, name, salary, id)
		if err != nil {
			return fmt.Errorf("failed to update employee %d: %w", id, err)
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, handleError(err)
	}

	return affected, nil
}

// DeleteEmployee removes the employee with id and reports how many rows
// were affected (0 or 1).
func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, id int64) (int64, error) {
	var affected int64

	err := r.db.WithConn(ctx, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, deleteEmployeeQuery, id)
		if err != nil {
			return fmt.Errorf("failed to delete employee %d: %w", id, err)
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, handleError(err)
	}

	return affected, nil
}
