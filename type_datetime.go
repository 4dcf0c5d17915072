package bettrack

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// DateTimeFormat is the format used to represent timestamps as strings.
const DateTimeFormat = time.RFC3339

// readDateTimeFormats are the accepted input layouts, most specific first.
// RFC3339 also swallows an optional fractional second, so timestamps written
// by other tools (e.g. "2026-03-05T18:30:00.000Z") parse as well.
var readDateTimeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-1-2T15:04",
	"2006-1-2 15:04",
	"2006-1-2",
}

// DateTime represents a timestamp with minute-level granularity, in UTC.
type DateTime struct {
	t time.Time
}

// NewDateTime returns a normalized DateTime for the given components.
func NewDateTime(year int, month time.Month, day, hour, min int) DateTime {
	return DateTime{time.Date(year, month, day, hour, min, 0, 0, time.UTC)}
}

// Now returns the current instant truncated to the minute.
func Now() DateTime { return DateTime{time.Now().UTC().Truncate(time.Minute)} }

// String formats the timestamp in RFC3339.
func (d DateTime) String() string { return d.t.Format(DateTimeFormat) }

// Format returns a textual representation of the timestamp formatted
// according to the layout defined by the argument.
//
//	See the documentation for [time.Format].
func (d DateTime) Format(layout string) string { return d.t.Format(layout) }

// IsZero returns true if the timestamp is the zero value.
func (d DateTime) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is before x.
func (d DateTime) Before(x DateTime) bool { return d.t.Before(x.t) }

// After reports whether d is after x.
func (d DateTime) After(x DateTime) bool { return d.t.After(x.t) }

// Equal reports whether d and x are the same instant.
func (d DateTime) Equal(x DateTime) bool { return d.t.Equal(x.t) }

// MonthKey returns the calendar month the timestamp falls in.
func (d DateTime) MonthKey() MonthKey { return MonthKey(d.t.Format("2006-01")) }

// ParseDateTime parses a DateTime from a string. It is lenient and accepts
// a bare date, a date with minutes, or a full RFC3339 timestamp. Anything
// finer than the minute is truncated away.
func ParseDateTime(str string) (DateTime, error) {
	for _, layout := range readDateTimeFormats {
		if t, err := time.Parse(layout, str); err == nil {
			return DateTime{t.UTC().Truncate(time.Minute)}, nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid timestamp %q, want format %q", str, "2006-01-02T15:04")
}

// UnmarshalJSON implements the json specific way to unmarshal a timestamp
// from a json string.
func (d *DateTime) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := ParseDateTime(str)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q in data file: %w", str, err)
	}
	*d = on
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a DateTime pointer is a valid json marshal/unmarshal type.
var _ json.Marshaler = (*DateTime)(nil)
var _ json.Unmarshaler = (*DateTime)(nil)

// MonthKey identifies a calendar month in "YYYY-MM" form. Keys compare and
// sort chronologically as plain strings.
type MonthKey string

var monthKeyRE = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ParseMonthKey validates a "YYYY-MM" month key.
func ParseMonthKey(str string) (MonthKey, error) {
	if !monthKeyRE.MatchString(str) {
		return "", fmt.Errorf("invalid month %q, want format YYYY-MM", str)
	}
	return MonthKey(str), nil
}

// ThisMonth returns the current calendar month.
func ThisMonth() MonthKey { return Now().MonthKey() }
