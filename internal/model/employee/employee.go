// Package employee defines the Employee entity, the row of the employees table.
package employee

// TableName is the table the repository runs its statements against.
const TableName = "employees"

// Employee is a persisted employee. ID is assigned by the store on insert
// and never changes afterwards.
type Employee struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Salary int64  `json:"salary" db:"salary"`
}
