package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator configures gin's validator to report fields by their JSON
// tag names.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// ValidationMessage renders a binding error as one human-readable message.
// Non-validator errors (malformed JSON) pass through unchanged.
func ValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	parts := make([]string, len(validationErrors))
	for i, e := range validationErrors {
		parts[i] = e.Field() + ": " + validationDetail(e)
	}
	return strings.Join(parts, "; ")
}

func validationDetail(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "email", "email|eq=":
		return "invalid email format"
	default:
		return "invalid value"
	}
}
