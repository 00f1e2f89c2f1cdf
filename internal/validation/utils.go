package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/employees-api/internal/errs"
)

// Validatable is implemented by request payloads.
//
// Payloads are pointer types so echo can bind into them; Validate usually
// just runs validator.Struct on the receiver.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a rule that cannot be expressed with struct tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors lets Validate return several custom rule failures.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds path parameters and the JSON body into payload and
// validates it.
//
// Every step fails with 422: a path segment or body that cannot be coerced
// into the payload types is as unprocessable as one that breaks a rule.
func BindAndValidate(c echo.Context, payload Validatable) error {
	binder := &echo.DefaultBinder{}

	if err := binder.BindPathParams(c, payload); err != nil {
		return pathParamError(c, err)
	}

	if err := binder.BindBody(c, payload); err != nil {
		return bodyError(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewUnprocessableEntityError(msg, true, fieldErrors)
	}

	return nil
}

// pathParamError reports which path parameters failed to bind. Routes in
// this service only take integer ids, hence the wording.
func pathParamError(c echo.Context, err error) *errs.HTTPError {
	names := c.ParamNames()

	fieldErrors := make([]errs.FieldError, 0, len(names))
	for _, name := range names {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: name,
			Error: "must be an integer",
		})
	}

	message := "Invalid path parameter: " + strings.Join(names, ", ")
	return errs.NewUnprocessableEntityError(message, true, fieldErrors).WithCause(err)
}

// bodyError turns a JSON decoding failure into a 422.
func bodyError(err error) *errs.HTTPError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		fieldErrors := []errs.FieldError{{
			Field: typeErr.Field,
			Error: fmt.Sprintf("must be of type %s", typeErr.Type),
		}}
		message := fmt.Sprintf("Invalid value for %s", typeErr.Field)
		return errs.NewUnprocessableEntityError(message, true, fieldErrors).WithCause(err)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		message, ok := echoErr.Message.(string)
		if !ok || message == "" {
			message = "Invalid request payload"
		}
		return errs.NewUnprocessableEntityError(message, false, nil).WithCause(err)
	}

	return errs.NewUnprocessableEntityError("Invalid request payload", false, nil).WithCause(err)
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, customErr := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: customErr.Field,
				Error: customErr.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// validator.InvalidValidationError and friends: a programming error
		// in the payload type, but still reported rather than dropped.
		return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
