package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "UNPROCESSABLE_ENTITY", MakeUpperCaseWithUnderscores("Unprocessable Entity"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestNewEmployeeNotFoundError(t *testing.T) {
	err := NewEmployeeNotFoundError()

	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, CodeEmployeeNotFound, err.Code)
	assert.Equal(t, "Employee not found", err.Error())
}

func TestNewDatabaseUnavailableError(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	err := NewDatabaseUnavailableError(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, CodeDatabaseUnavailable, err.Code)
	assert.Equal(t, "Database connection error: "+cause.Error(), err.Message)
	assert.ErrorIs(t, err, cause)
	if assert.NotNil(t, err.Action) {
		assert.Equal(t, ActionTypeRetry, err.Action.Type)
	}
}

func TestHTTPError_WithMessageKeepsShape(t *testing.T) {
	base := NewUnprocessableEntityError("Validation failed", true, []FieldError{{Field: "name", Error: "is required"}})

	copied := base.WithMessage("Invalid employee")

	assert.Equal(t, "Invalid employee", copied.Message)
	assert.Equal(t, base.Status, copied.Status)
	assert.Equal(t, base.Errors, copied.Errors)
	assert.Equal(t, "Validation failed", base.Message)
}

func TestHTTPError_IsMatchesType(t *testing.T) {
	var target *HTTPError
	assert.True(t, errors.Is(NewInternalServerError(), target))
	assert.False(t, errors.Is(errors.New("plain"), target))
}
