package employee

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

// ListEmployeesPayload carries no input; it exists so the list endpoint runs
// through the same typed handler pipeline as the others.
type ListEmployeesPayload struct{}

func (p *ListEmployeesPayload) Validate() error {
	return nil
}

// GetEmployeeByIDPayload is bound from GET /employees/:id.
type GetEmployeeByIDPayload struct {
	ID int64 `param:"id" json:"-"`
}

func (p *GetEmployeeByIDPayload) Validate() error {
	return validate.Struct(p)
}

// CreateEmployeePayload is the body of POST /employees.
//
// Salary is a pointer so a missing salary fails "required" while an explicit
// 0 is still accepted.
type CreateEmployeePayload struct {
	Name   string `json:"name" validate:"required"`
	Salary *int64 `json:"salary" validate:"required"`
}

func (p *CreateEmployeePayload) Validate() error {
	return validate.Struct(p)
}

// UpdateEmployeePayload is bound from PUT /employees/:id. The id comes only
// from the path; an "id" key in the body is ignored.
type UpdateEmployeePayload struct {
	ID     int64  `param:"id" json:"-"`
	Name   string `json:"name" validate:"required"`
	Salary *int64 `json:"salary" validate:"required"`
}

func (p *UpdateEmployeePayload) Validate() error {
	return validate.Struct(p)
}

// DeleteEmployeePayload is bound from DELETE /employees/:id.
type DeleteEmployeePayload struct {
	ID int64 `param:"id" json:"-"`
}

func (p *DeleteEmployeePayload) Validate() error {
	return validate.Struct(p)
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

// CreatedResponse is returned by POST /employees.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
