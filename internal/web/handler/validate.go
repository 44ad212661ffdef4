package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is shared by all handlers.
var Validator = validator.New() //nolint:gochecknoglobals

// ValidationMessages renders validator errors as readable lines.
func ValidationMessages(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	out := make([]string, len(validationErrors))
	for i, ve := range validationErrors {
		out[i] = "Field '" + strings.ToLower(ve.Field()) + "' failed validation tag '" + ve.Tag() + "'"
	}

	return out
}
