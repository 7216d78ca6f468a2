package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/careerpilot/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves, usually by calling Struct.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue that cannot
// be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var validate = newValidator()

// newValidator builds the shared validator. Field errors are reported under
// the JSON name of the field and the non-standard "notblank" rule is
// registered for strings that must contain more than whitespace.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}

	return v
}

// Struct validates s against its `validate` struct tags.
func Struct(s any) error {
	return validate.Struct(s)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the request struct from the body.
//  2. payload.Validate() applies validation rules.
//  3. A 400 *errs.HTTPError is returned if either step fails.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// bindErrorMessage extracts the message echo attaches to binding failures
// (malformed JSON, type mismatches).
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request body"
}

// validateStruct calls v.Validate() and extracts field errors if
// validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

// extractValidationError converts validator and custom errors into field
// errors. The returned message describes the first field error so the
// client sees which field was wrong without reading the list.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	var validationErrors validator.ValidationErrors

	switch {
	case errors.As(err, &customValidationErrors):
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}

	case errors.As(err, &validationErrors):
		for _, err := range validationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field(),
				Error: fieldErrorMessage(err),
			})
		}

	default:
		return "Validation failed: " + err.Error(), []errs.FieldError{}
	}

	if len(fieldErrors) == 0 {
		return "Validation failed", []errs.FieldError{}
	}

	first := fieldErrors[0]
	return fmt.Sprintf("%s %s", FieldLabel(first.Field), first.Error), fieldErrors
}

// fieldErrorMessage turns one validator failure into a message meant to
// follow the field label ("Resume text" + " cannot be empty").
func fieldErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required", "notblank":
		return "cannot be empty"

	case "min":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	case "email":
		return "must be a valid email address"

	default:
		if err.Param() != "" {
			return fmt.Sprintf("failed %s:%s", err.Tag(), err.Param())
		}
		return fmt.Sprintf("failed %s", err.Tag())
	}
}

// FieldLabel renders a JSON field name for humans:
//
//	"job_description" -> "Job description"
func FieldLabel(field string) string {
	label := strings.ReplaceAll(field, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
