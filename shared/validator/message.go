package validator

import (
	"errors"
	"fmt"
	"reflect"

	val "github.com/go-playground/validator/v10"
)

type formatter func(field, param string, kind reflect.Kind) string

var formatters = map[string]formatter{
	"required": func(field, _ string, _ reflect.Kind) string {
		return field + " is required"
	},
	"email": func(field, _ string, _ reflect.Kind) string {
		return field + " must be a valid email address"
	},
	"numeric": func(field, _ string, _ reflect.Kind) string {
		return field + " must contain digits only"
	},
	"len": func(field, param string, kind reflect.Kind) string {
		if kind == reflect.String {
			return fmt.Sprintf("%s must be exactly %s characters long", field, param)
		}

		return fmt.Sprintf("%s must contain exactly %s items", field, param)
	},
	"max": func(field, param string, kind reflect.Kind) string {
		if kind == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}

		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	},
	"min": func(field, param string, kind reflect.Kind) string {
		if kind == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}

		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	},
	"gt": func(field, param string, _ reflect.Kind) string {
		if param == "0" {
			return field + " must be a positive id"
		}

		return fmt.Sprintf("%s must be greater than %s", field, param)
	},
}

// message renders the first validation error with a known rule; unknown rules fall back
// to the validator's own text.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		format, ok := formatters[valErr.Tag()]
		if !ok {
			continue
		}

		field := valErr.Field()
		if field == "" {
			field = "value"
		}

		return format(field, valErr.Param(), valErr.Kind())
	}

	return valErrors.Error()
}
