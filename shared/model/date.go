package model

import (
	"bytes"
	"deportur/shared/timezone"
	"encoding/json"
	"fmt"
	"time"
)

var null = []byte("null")

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Date is a calendar day, written as YYYY-MM-DD. Datetime input is truncated to its day.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, timezone.GetLocation())}
}

// ParseDate accepts a date or a datetime.
func ParseDate(value string) (Date, error) {
	parsed, err := parseTime(value)
	if err != nil {
		return Date{}, err
	}

	return Date{Time: timezone.StartOfDay(parsed)}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return null, nil
	}

	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value, empty, err := unquote(data)
	if err != nil || empty {
		*d = Date{}

		return err
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// After reports whether d is a later day than other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// DateTime keeps the time of day, written as RFC 3339.
type DateTime struct {
	time.Time
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return null, nil
	}

	return json.Marshal(d.Format(time.RFC3339))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	value, empty, err := unquote(data)
	if err != nil || empty {
		*d = DateTime{}

		return err
	}

	parsed, err := parseTime(value)
	if err != nil {
		return err
	}

	d.Time = parsed

	return nil
}

func unquote(data []byte) (value string, empty bool, err error) {
	if bytes.Equal(bytes.TrimSpace(data), null) {
		return "", true, nil
	}

	if err = json.Unmarshal(data, &value); err != nil {
		return "", false, fmt.Errorf("date must be a string: %w", err)
	}

	return value, value == "", nil
}

func parseTime(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		parsed, err := timezone.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q", value)
}
