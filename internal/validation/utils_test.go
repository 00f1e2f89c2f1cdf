package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/employees-api/internal/errs"
	"github.com/deppfellow/employees-api/internal/model/employee"
)

func newContext(method, target, body string, paramValues ...string) echo.Context {
	e := echo.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	if len(paramValues) > 0 {
		c.SetParamNames("id")
		c.SetParamValues(paramValues...)
	}
	return c
}

func requireUnprocessable(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	return httpErr
}

func TestBindAndValidate_ValidCreatePayload(t *testing.T) {
	c := newContext(http.MethodPost, "/employees", `{"name":"Ann","salary":50000}`)
	payload := &employee.CreateEmployeePayload{}

	require.NoError(t, BindAndValidate(c, payload))

	assert.Equal(t, "Ann", payload.Name)
	require.NotNil(t, payload.Salary)
	assert.Equal(t, int64(50000), *payload.Salary)
}

func TestBindAndValidate_ZeroSalaryIsAccepted(t *testing.T) {
	c := newContext(http.MethodPost, "/employees", `{"name":"Intern","salary":0}`)

	assert.NoError(t, BindAndValidate(c, &employee.CreateEmployeePayload{}))
}

func TestBindAndValidate_MissingFields(t *testing.T) {
	c := newContext(http.MethodPost, "/employees", `{}`)

	httpErr := requireUnprocessable(t, BindAndValidate(c, &employee.CreateEmployeePayload{}))

	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "salary", Error: "is required"},
	}, httpErr.Errors)
}

func TestBindAndValidate_WrongSalaryType(t *testing.T) {
	c := newContext(http.MethodPost, "/employees", `{"name":"Ann","salary":"lots"}`)

	httpErr := requireUnprocessable(t, BindAndValidate(c, &employee.CreateEmployeePayload{}))

	assert.Equal(t, "Invalid value for salary", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "salary", httpErr.Errors[0].Field)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	c := newContext(http.MethodPost, "/employees", `{"name":`)

	requireUnprocessable(t, BindAndValidate(c, &employee.CreateEmployeePayload{}))
}

func TestBindAndValidate_PathParameter(t *testing.T) {
	c := newContext(http.MethodPut, "/employees/7", `{"id":99,"name":"Ann","salary":60000}`, "7")
	payload := &employee.UpdateEmployeePayload{}

	require.NoError(t, BindAndValidate(c, payload))

	assert.Equal(t, int64(7), payload.ID)
	assert.Equal(t, "Ann", payload.Name)
}

func TestBindAndValidate_NonIntegerPathParameter(t *testing.T) {
	c := newContext(http.MethodGet, "/employees/abc", "", "abc")

	httpErr := requireUnprocessable(t, BindAndValidate(c, &employee.GetEmployeeByIDPayload{}))

	assert.Equal(t, []errs.FieldError{{Field: "id", Error: "must be an integer"}}, httpErr.Errors)
}

func TestBindAndValidate_UnsupportedContentType(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader("name=Ann"))
	req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	c := e.NewContext(req, httptest.NewRecorder())

	requireUnprocessable(t, BindAndValidate(c, &employee.CreateEmployeePayload{}))
}

type customPayload struct{}

func (p *customPayload) Validate() error {
	return CustomValidationErrors{{Field: "salary", Message: "must be positive"}}
}

func TestBindAndValidate_CustomValidationErrors(t *testing.T) {
	c := newContext(http.MethodPost, "/x", `{}`)

	httpErr := requireUnprocessable(t, BindAndValidate(c, &customPayload{}))

	assert.Equal(t, []errs.FieldError{{Field: "salary", Error: "must be positive"}}, httpErr.Errors)
}
