package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"rentdesk/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const (
	tagRequired = "required"

	MessageMissingFields = "missing required fields"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report fields by their wire name so clients can match details to payload keys.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct validates data. Absent required fields are reported together in the
// failure details; any other rule violation is reported by its message.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	if missing := MissingFields(err); len(missing) > 0 {
		return failure.BadRequestWithDetails(MessageMissingFields, strings.Join(missing, ", ")) //nolint:wrapcheck
	}

	return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// MissingFields lists the fields that failed the required rule, in declaration order.
func MissingFields(err error) []string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return nil
	}

	missing := []string{}

	for _, valErr := range valErrors {
		if valErr.Tag() == tagRequired {
			missing = append(missing, valErr.Field())
		}
	}

	return missing
}
