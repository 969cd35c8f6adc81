package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		hours   int
		minutes int
		total   int
	}{
		{name: "midnight", input: "00:00", hours: 0, minutes: 0, total: 0},
		{name: "morning", input: "09:30", hours: 9, minutes: 30, total: 570},
		{name: "last minute of day", input: "23:59", hours: 23, minutes: 59, total: 1439},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "missing zero padding", input: "9:30", wantErr: true},
		{name: "not a time", input: "banana", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hours, got.Hours)
			assert.Equal(t, tt.minutes, got.Minutes)
			assert.Equal(t, tt.total, got.TotalMinutes)
		})
	}
}

func TestFormatTimeRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "09:05", "12:30", "23:59"} {
		parsed, err := ParseTime(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatTime(parsed))
	}
}

func TestTimeDifference(t *testing.T) {
	mustParse := func(s string) ClockTime {
		ct, err := ParseTime(s)
		require.NoError(t, err)
		return ct
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "same time", start: "09:00", end: "09:00", want: 0},
		{name: "one hour", start: "09:00", end: "10:00", want: 60},
		{name: "partial hour", start: "09:30", end: "10:15", want: 45},
		{name: "wraps past midnight", start: "23:30", end: "00:30", want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeDifference(mustParse(tt.start), mustParse(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  string
	}{
		{name: "zero", input: 0, want: "00:00"},
		{name: "morning", input: 570, want: "09:30"},
		{name: "wraps forward", input: 1500, want: "01:00"},
		{name: "exactly one day", input: 1440, want: "00:00"},
		{name: "negative wraps back", input: -30, want: "23:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinutesToTime(tt.input))
		})
	}
}

func TestAddMinutesToTime(t *testing.T) {
	got, err := AddMinutesToTime("09:30", 45)
	require.NoError(t, err)
	assert.Equal(t, "10:15", got)

	got, err = AddMinutesToTime("23:45", 30)
	require.NoError(t, err)
	assert.Equal(t, "00:15", got)

	_, err = AddMinutesToTime("25:00", 10)
	assert.Error(t, err)
}
