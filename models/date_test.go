package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceDate(t *testing.T) {
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input any
		want  any
	}{
		{name: "rfc3339 with millis", input: "2024-01-01T00:00:00.000Z", want: want},
		{name: "rfc3339 with offset", input: "2024-01-01T03:00:00+03:00", want: want},
		{name: "date only", input: "2024-01-01", want: want},
		{name: "local datetime", input: "2024-01-01T00:00:00", want: want},
		{name: "epoch millis", input: float64(want.UnixMilli()), want: want},
		{name: "sub-millisecond truncated", input: "2024-01-01T00:00:00.000999Z", want: want},
		{name: "empty string kept", input: "", want: ""},
		{name: "zero kept", input: float64(0), want: float64(0)},
		{name: "false kept", input: false, want: false},
		{name: "null kept", input: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]any{FieldDate: tt.input, "amount": float64(1)}

			require.NoError(t, CoerceDate(fields))
			assert.Equal(t, tt.want, fields[FieldDate])
			assert.Equal(t, float64(1), fields["amount"])
		})
	}
}

func TestCoerceDate_NoDateField(t *testing.T) {
	fields := map[string]any{"note": "x"}

	require.NoError(t, CoerceDate(fields))
	_, ok := fields[FieldDate]
	assert.False(t, ok)
}

func TestCoerceDate_Invalid(t *testing.T) {
	for _, v := range []any{"yesterday", true, map[string]any{"a": 1}, []any{1}} {
		err := CoerceDate(map[string]any{FieldDate: v})
		assert.ErrorIs(t, err, ErrInvalidDate, "value %v", v)
	}
}

func TestNormalizeDate(t *testing.T) {
	fields := map[string]any{FieldDate: time.Date(2024, 5, 6, 7, 8, 9, 123_000_000, time.FixedZone("x", 3600))}
	NormalizeDate(fields)
	assert.Equal(t, "2024-05-06T06:08:09.123Z", fields[FieldDate])

	passthrough := map[string]any{FieldDate: "not a date"}
	NormalizeDate(passthrough)
	assert.Equal(t, "not a date", passthrough[FieldDate])
}

func TestCoerceThenNormalize_RoundTrip(t *testing.T) {
	fields := map[string]any{FieldDate: "2024-01-01T00:00:00.000Z"}

	require.NoError(t, CoerceDate(fields))
	NormalizeDate(fields)

	assert.Equal(t, "2024-01-01T00:00:00.000Z", fields[FieldDate])
}
