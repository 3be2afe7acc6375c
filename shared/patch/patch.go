// Package patch turns a partial JSON update into a column map restricted to an allow-list.
package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"rentdesk/shared/failure"
	"rentdesk/shared/model"
	"rentdesk/shared/validator"
	"slices"
	"strings"
)

const (
	MessageUnknownFields = "unknown fields"
	MessageInvalidValue  = "invalid value"
)

var errNullValue = errors.New("value cannot be null")

// Decoder converts one raw JSON value into the value written to its column.
type Decoder func(raw json.RawMessage) (any, error)

type Field struct {
	Column string
	Decode Decoder
}

// AllowList maps wire keys to the columns they may update.
type AllowList map[string]Field

// Decode reads a JSON object without interpreting its values.
func Decode(r io.Reader) (map[string]json.RawMessage, error) {
	payload := map[string]json.RawMessage{}

	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, failure.EmptyUpdate
		}

		return nil, failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return payload, nil
}

// Build validates every key of payload against the allow-list and returns the column
// values to write. Unknown keys and undecodable values are rejected as a whole.
func (a AllowList) Build(payload map[string]json.RawMessage) (map[string]any, error) {
	if len(payload) == 0 {
		return nil, failure.EmptyUpdate
	}

	unknown := []string{}

	for key := range payload {
		if _, ok := a[key]; !ok {
			unknown = append(unknown, key)
		}
	}

	if len(unknown) > 0 {
		slices.Sort(unknown)

		return nil, failure.BadRequestWithDetails(MessageUnknownFields, strings.Join(unknown, ", ")) //nolint:wrapcheck
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	mod := make(map[string]any, len(payload))

	for _, key := range keys {
		field := a[key]

		value, err := field.Decode(payload[key])
		if err != nil {
			return nil, failure.BadRequestWithDetails(MessageInvalidValue, fmt.Sprintf("%s: %s", key, cause(err))) //nolint:wrapcheck
		}

		mod[field.Column] = value
	}

	return mod, nil
}

// Keys lists the accepted wire keys in order.
func (a AllowList) Keys() []string {
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

func cause(err error) string {
	if f, ok := failure.As(err); ok {
		return f.Message
	}

	return err.Error()
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null"
}

func decodeString(raw json.RawMessage, rules string) (string, error) {
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("expected a string: %w", err)
	}

	if rules != "" {
		if err := validator.ValidateVar(value, rules); err != nil {
			return "", err //nolint:wrapcheck
		}
	}

	return value, nil
}

// String accepts a JSON string checked against the validator rules.
func String(column, rules string) Field {
	return Field{
		Column: column,
		Decode: func(raw json.RawMessage) (any, error) {
			if isNull(raw) {
				return nil, errNullValue
			}

			return decodeString(raw, rules)
		},
	}
}

// NullableString is String that also accepts null.
func NullableString(column, rules string) Field {
	return Field{
		Column: column,
		Decode: func(raw json.RawMessage) (any, error) {
			if isNull(raw) {
				return nil, nil
			}

			return decodeString(raw, rules)
		},
	}
}

func decodeInt(raw json.RawMessage) (int64, error) {
	var value int64
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, fmt.Errorf("expected an integer: %w", err)
	}

	return value, nil
}

// Int accepts a positive JSON integer, typically a foreign key.
func Int(column string) Field {
	return Field{
		Column: column,
		Decode: func(raw json.RawMessage) (any, error) {
			if isNull(raw) {
				return nil, errNullValue
			}

			value, err := decodeInt(raw)
			if err != nil {
				return nil, err
			}

			if value <= 0 {
				return nil, errors.New("must be a positive integer")
			}

			return value, nil
		},
	}
}

// NullableInt is Int that also accepts null.
func NullableInt(column string) Field {
	field := Int(column)
	decode := field.Decode

	field.Decode = func(raw json.RawMessage) (any, error) {
		if isNull(raw) {
			return nil, nil
		}

		return decode(raw)
	}

	return field
}

// Date accepts a YYYY-MM-DD string.
func Date(column string) Field {
	return Field{
		Column: column,
		Decode: func(raw json.RawMessage) (any, error) {
			if isNull(raw) {
				return nil, errNullValue
			}

			var value model.Date
			if err := json.Unmarshal(raw, &value); err != nil {
				return nil, model.ErrInvalidDate
			}

			return value, nil
		},
	}
}

// NullableDate is Date that also accepts null.
func NullableDate(column string) Field {
	field := Date(column)
	decode := field.Decode

	field.Decode = func(raw json.RawMessage) (any, error) {
		if isNull(raw) {
			return nil, nil
		}

		return decode(raw)
	}

	return field
}

// Clock accepts an HH:MM string.
func Clock(column string) Field {
	return Field{
		Column: column,
		Decode: func(raw json.RawMessage) (any, error) {
			if isNull(raw) {
				return nil, errNullValue
			}

			var value model.Clock
			if err := json.Unmarshal(raw, &value); err != nil {
				return nil, model.ErrInvalidClock
			}

			return value, nil
		},
	}
}
