package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateInput runs struct tag validation on a submission and wraps the
// field-level detail for the caller
func validateInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("submission validation failed: %w", err)
	}
	return nil
}
