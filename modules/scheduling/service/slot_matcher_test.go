package service

import (
	"testing"

	"interview-scheduler/modules/scheduling/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(date, start, end string) entity.TimeSlot {
	return entity.TimeSlot{Date: date, StartTime: start, EndTime: end}
}

func TestOverlapWindow(t *testing.T) {
	tests := []struct {
		name      string
		a         entity.TimeSlot
		b         entity.TimeSlot
		wantOK    bool
		wantStart string
		wantEnd   string
	}{
		{
			name: "partial overlap", a: slot("2024-01-10", "09:00", "10:00"), b: slot("2024-01-10", "09:30", "10:30"),
			wantOK: true, wantStart: "09:30", wantEnd: "10:00",
		},
		{
			name: "containment", a: slot("2024-01-10", "08:00", "18:00"), b: slot("2024-01-10", "12:00", "13:00"),
			wantOK: true, wantStart: "12:00", wantEnd: "13:00",
		},
		{
			name: "identical windows", a: slot("2024-01-10", "09:00", "10:00"), b: slot("2024-01-10", "09:00", "10:00"),
			wantOK: true, wantStart: "09:00", wantEnd: "10:00",
		},
		{
			name: "disjoint", a: slot("2024-01-10", "09:00", "10:00"), b: slot("2024-01-10", "11:00", "12:00"),
			wantOK: false,
		},
		{
			name: "touching endpoints", a: slot("2024-01-10", "09:00", "10:00"), b: slot("2024-01-10", "10:00", "11:00"),
			wantOK: false,
		},
		{
			name: "bad time format", a: slot("2024-01-10", "9am", "10:00"), b: slot("2024-01-10", "09:00", "10:00"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := overlapWindow(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantStart, FormatTime(start))
				assert.Equal(t, tt.wantEnd, FormatTime(end))
			}
		})
	}
}

func TestFindOverlapSlotsExactFit(t *testing.T) {
	// 30-minute intersection, 30-minute interview: the single slot fills it
	slots := findOverlapSlots(
		slot("2024-01-10", "09:00", "10:00"),
		slot("2024-01-10", "09:30", "10:30"),
		30,
	)

	require.Len(t, slots, 1)
	assert.Equal(t, "09:30", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[0].EndTime)
	assert.Equal(t, "2024-01-10", slots[0].Date)
}

func TestFindOverlapSlotsTooShort(t *testing.T) {
	slots := findOverlapSlots(
		slot("2024-01-10", "09:00", "09:20"),
		slot("2024-01-10", "09:00", "09:20"),
		30,
	)
	assert.Empty(t, slots)
}

func TestFindOverlapSlotsDisjoint(t *testing.T) {
	slots := findOverlapSlots(
		slot("2024-01-10", "09:00", "10:00"),
		slot("2024-01-10", "14:00", "15:00"),
		30,
	)
	assert.Empty(t, slots)
}

func TestFindOverlapSlotsContainment(t *testing.T) {
	interviewer := slot("2024-01-10", "09:00", "12:00")
	candidate := slot("2024-01-10", "09:00", "12:00")

	slots := findOverlapSlots(interviewer, candidate, 45)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		start, err := ParseTime(s.StartTime)
		require.NoError(t, err)
		end, err := ParseTime(s.EndTime)
		require.NoError(t, err)

		assert.Equal(t, 45, TimeDifference(start, end))
		assert.GreaterOrEqual(t, start.TotalMinutes, 9*60)
		assert.LessOrEqual(t, end.TotalMinutes, 12*60)
	}

	// First offered slot always sits at the front of the intersection
	assert.Equal(t, "09:00", slots[0].StartTime)
}

func TestFindOverlapSlotsStep(t *testing.T) {
	// 60-minute intersection, 30-minute interview: 30 minutes of slack,
	// stepped at 30/4 = 7 minutes
	slots := findOverlapSlots(
		slot("2024-01-10", "09:00", "10:00"),
		slot("2024-01-10", "09:00", "10:00"),
		30,
	)

	var starts []string
	for _, s := range slots {
		starts = append(starts, s.StartTime)
	}
	assert.Equal(t, []string{"09:00", "09:07", "09:14", "09:21", "09:28"}, starts)
}

func TestScoreSlots(t *testing.T) {
	hours := entity.BusinessHours{Start: 9, End: 17}

	tests := []struct {
		name  string
		start string
		score int
	}{
		{name: "on the hour in business hours", start: "09:00", score: 130},
		{name: "half past in business hours", start: "10:30", score: 125},
		{name: "quarter past in business hours", start: "11:15", score: 120},
		{name: "five minute mark in business hours", start: "11:05", score: 115},
		{name: "odd minute in business hours", start: "11:07", score: 110},
		{name: "on the hour outside business hours", start: "07:00", score: 120},
		{name: "odd minute outside business hours", start: "06:53", score: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, err := AddMinutesToTime(tt.start, 30)
			require.NoError(t, err)

			matches := scoreSlots([]entity.TimeSlot{slot("2024-01-10", tt.start, end)}, hours)
			require.Len(t, matches, 1)
			assert.Equal(t, tt.score, matches[0].Score)
		})
	}
}

func TestScoreSlotsOrderingIsStable(t *testing.T) {
	hours := entity.BusinessHours{Start: 9, End: 17}
	slots := []entity.TimeSlot{
		slot("2024-01-10", "09:07", "09:37"),
		slot("2024-01-10", "10:00", "10:30"),
		slot("2024-01-10", "11:07", "11:37"), // ties with 09:07
		slot("2024-01-10", "11:00", "11:30"), // ties with 10:00
	}

	matches := scoreSlots(slots, hours)
	require.Len(t, matches, 4)

	// Highest score first, ties in generation order
	assert.Equal(t, "10:00", matches[0].StartTime)
	assert.Equal(t, "11:00", matches[1].StartTime)
	assert.Equal(t, "09:07", matches[2].StartTime)
	assert.Equal(t, "11:07", matches[3].StartTime)
}
