package errs

import (
	"net/http"
)

const (
	// CodeEmployeeNotFound is returned when get/update/delete matched no row.
	CodeEmployeeNotFound = "EMPLOYEE_NOT_FOUND"

	// CodeDatabaseUnavailable is returned when a connection could not be opened.
	CodeDatabaseUnavailable = "DATABASE_UNAVAILABLE"

	// CodeDatabaseError is returned for any other unexpected store failure.
	CodeDatabaseError = "DATABASE_ERROR"

	// MessageEmployeeNotFound is the static message for missing employees.
	MessageEmployeeNotFound = "Employee not found"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code overrides the default "BAD_REQUEST" when non-nil; errors and action are optional.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewEmployeeNotFoundError is the NotFound error of the employees API.
func NewEmployeeNotFoundError() *HTTPError {
	code := CodeEmployeeNotFound
	return NewNotFoundError(MessageEmployeeNotFound, true, &code)
}

// NewUnprocessableEntityError creates a 422 HTTPError.
//
// This is what the client gets when the request body (or a path parameter)
// cannot be coerced into the expected types, or fails validation rules.
func NewUnprocessableEntityError(message string, override bool, errors []FieldError) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity)),
		Message:  message,
		Status:   http.StatusUnprocessableEntity,
		Override: override,
		Errors:   errors,
	}
}

// NewInternalServerError creates a generic 500 HTTPError.
//
// The message is the status text, not the real internal error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// NewDatabaseUnavailableError creates the 500 returned when no connection to
// the store could be established (timeout, refused, auth failure).
func NewDatabaseUnavailableError(cause error) *HTTPError {
	return &HTTPError{
		Code:     CodeDatabaseUnavailable,
		Message:  "Database connection error: " + cause.Error(),
		Status:   http.StatusInternalServerError,
		Override: false,
		Action: &Action{
			Type:    ActionTypeRetry,
			Message: "The database is currently unreachable, try again later",
		},
		cause: cause,
	}
}

// NewDatabaseError creates the 500 returned for unexpected store failures.
// Unlike NewInternalServerError it carries the underlying message.
func NewDatabaseError(cause error) *HTTPError {
	return &HTTPError{
		Code:     CodeDatabaseError,
		Message:  "Database error: " + cause.Error(),
		Status:   http.StatusInternalServerError,
		Override: false,
		cause:    cause,
	}
}
