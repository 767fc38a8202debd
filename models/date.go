package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidDate is returned when a truthy "date" value cannot be turned into
// a timestamp.
var ErrInvalidDate = errors.New("invalid date")

// ISODateLayout is the output layout for dates: UTC with millisecond precision.
const ISODateLayout = "2006-01-02T15:04:05.000Z"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// CoerceDate converts the "date" field of fields, if present and truthy, into
// a UTC time.Time with millisecond precision. Falsy values ("", 0, false, nil)
// are left untouched. The map is modified in place.
func CoerceDate(fields map[string]any) error {
	v, ok := fields[FieldDate]
	if !ok || !truthy(v) {
		return nil
	}

	t, err := parseDate(v)
	if err != nil {
		return err
	}

	fields[FieldDate] = t
	return nil
}

// NormalizeDate renders a native timestamp "date" as an ISO-8601 string.
// Any other value is passed through unchanged.
func NormalizeDate(fields map[string]any) {
	if t, ok := fields[FieldDate].(time.Time); ok {
		fields[FieldDate] = FormatDate(t)
	}
}

// FormatDate formats t the way dates are returned to callers.
func FormatDate(t time.Time) string {
	return t.UTC().Format(ISODateLayout)
}

func parseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d.UTC().Truncate(time.Millisecond), nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t.UTC().Truncate(time.Millisecond), nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, d)
	case float64:
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, d)
		}
		return time.UnixMilli(int64(d)).UTC(), nil
	case int64:
		return time.UnixMilli(d).UTC(), nil
	case int:
		return time.UnixMilli(int64(d)).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, v)
	}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	case int64:
		return x != 0
	default:
		return true
	}
}
