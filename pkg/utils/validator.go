package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under the names clients send them with.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return v
}

// ValidateStruct checks every field and returns all failures, or nil.
func ValidateStruct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: getErrorMessage(fe),
		})
	}

	return fieldErrors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	numeric := isNumeric(err.Kind())

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", err.Field())
	case "min":
		if numeric {
			return fmt.Sprintf("%q must be greater than or equal to %s", err.Field(), err.Param())
		}
		return fmt.Sprintf("%q length must be at least %s", err.Field(), err.Param())
	case "max":
		if numeric {
			return fmt.Sprintf("%q must be less than or equal to %s", err.Field(), err.Param())
		}
		return fmt.Sprintf("%q length must be at most %s", err.Field(), err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("%q must be one of: %s", err.Field(), options)
	default:
		return fmt.Sprintf("%q is invalid", err.Field())
	}
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// FormatValidationErrors joins failures into a single log-friendly string.
func FormatValidationErrors(errs []FieldError) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}
