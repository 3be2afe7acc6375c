package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"rentdesk/shared/constant"
	"time"
)

var (
	ErrInvalidDate  = errors.New("date must use the YYYY-MM-DD format")
	ErrInvalidClock = errors.New("time must use the HH:MM format")
)

// Date is a calendar date stored in a DATE column and sent as YYYY-MM-DD.
type Date struct {
	time.Time
}

func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return Date{}, ErrInvalidDate
	}

	return Date{Time: parsed}, nil
}

func (d Date) String() string {
	return d.Format(constant.DateFormat)
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case time.Time:
		d.Time = time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)

		return nil
	case []byte:
		return d.parse(string(value))
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) parse(value string) error {
	if len(value) > len(constant.DateFormat) {
		value = value[:len(constant.DateFormat)]
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return ErrInvalidDate
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// Clock is a wall-clock time stored in a TIME column and sent as HH:MM.
type Clock struct {
	Hour   int
	Minute int
}

func ParseClock(value string) (Clock, error) {
	parsed, err := time.Parse(constant.TimeFormat, value)
	if err != nil {
		parsed, err = time.Parse(constant.TimeFormatSecond, value)
		if err != nil {
			return Clock{}, ErrInvalidClock
		}
	}

	return Clock{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Value implements driver.Valuer.
func (c Clock) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan implements sql.Scanner.
func (c *Clock) Scan(src any) error {
	var raw string

	switch value := src.(type) {
	case time.Time:
		*c = Clock{Hour: value.Hour(), Minute: value.Minute()}

		return nil
	case []byte:
		raw = string(value)
	case string:
		raw = value
	default:
		return fmt.Errorf("cannot scan %T into Clock", src)
	}

	if len(raw) > len(constant.TimeFormatSecond) {
		raw = raw[:len(constant.TimeFormatSecond)]
	}

	parsed, err := ParseClock(raw)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return ErrInvalidClock
	}

	parsed, err := ParseClock(value)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
