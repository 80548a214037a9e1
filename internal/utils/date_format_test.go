package utils_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/display_helpers/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	march5 := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "time value", value: march5, want: "05 de marzo de 2024"},
		{name: "time pointer", value: &march5, want: "05 de marzo de 2024"},
		{name: "millis", value: march5.UnixMilli(), want: "05 de marzo de 2024"},
		{name: "millis as float", value: float64(march5.UnixMilli()), want: "05 de marzo de 2024"},
		{name: "millis as json number", value: json.Number("1709640000000"), want: "05 de marzo de 2024"},
		{name: "millis as string", value: "1709640000000", want: "05 de marzo de 2024"},
		{name: "iso date", value: "2024-03-05", want: "05 de marzo de 2024"},
		{name: "iso date time with zone", value: "2024-12-31T23:30:00-02:00", want: "01 de enero de 2025"},
		{name: "iso date time", value: "2024-07-14T08:00:00", want: "14 de julio de 2024"},
		{name: "year only", value: "2024", want: "01 de enero de 2024"},
		{name: "english long form", value: "October 9, 2023", want: "09 de octubre de 2023"},
		{name: "nil is epoch", value: nil, want: "01 de enero de 1970"},
		{name: "true is one millisecond", value: true, want: "01 de enero de 1970"},
		{name: "false is epoch", value: false, want: "01 de enero de 1970"},
		{name: "not a date", value: "not-a-date", want: utils.InvalidDate},
		{name: "empty string", value: "", want: utils.InvalidDate},
		{name: "out of range millis", value: int64(9e15), want: utils.InvalidDate},
		{name: "zero time", value: time.Time{}, want: utils.InvalidDate},
		{name: "unsupported type", value: []int{1}, want: utils.InvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatDate(tt.value))
		})
	}
}

func TestDateFormatter_Location(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	f := utils.NewDateFormatter(loc)

	// 02:00 UTC on March 5 is still March 4 five hours west.
	instant := time.Date(2024, time.March, 5, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, "04 de marzo de 2024", f.Format(instant))
	assert.Equal(t, "05 de marzo de 2024", utils.FormatDate(instant))

	// Zone-less inputs are read in the formatter's location.
	got, ok := f.Parse("2024-03-05T23:00:00")
	require.True(t, ok)
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, "05 de marzo de 2024", f.Format("2024-03-05T23:00:00"))
}

func TestParseDate(t *testing.T) {
	got, ok := utils.ParseDate("2024-03-05T10:00:00Z")
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)))

	_, ok = utils.ParseDate("2024-13-45")
	assert.False(t, ok)

	got, ok = utils.ParseDate(true)
	require.True(t, ok)
	assert.Equal(t, int64(1), got.UnixMilli())
}
