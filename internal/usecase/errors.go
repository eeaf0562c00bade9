package usecase

import (
	"fmt"

	"cinema-salles/pkg/utils"
)

// NotFoundError reports an id lookup miss. It is an expected outcome, not a
// fault, and handlers answer it with 404.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ValidationError carries field level failures caught by a service.
type ValidationError struct {
	Errors []utils.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Errors)
}

func validate(data interface{}) error {
	if errs := utils.ValidateStruct(data); len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
