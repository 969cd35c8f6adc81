package service

import (
	"fmt"
	"testing"
	"time"

	"interview-scheduler/modules/scheduling/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingConverter struct{}

func (failingConverter) LocalToInstant(date, clock, timezone string) (time.Time, error) {
	return time.Time{}, fmt.Errorf("zone database unavailable")
}

func (failingConverter) InstantToLocal(t time.Time, timezone string) (time.Time, error) {
	return time.Time{}, fmt.Errorf("zone database unavailable")
}

func avail(userID string, slots ...entity.TimeSlot) entity.Availability {
	return entity.Availability{UserID: userID, TimeSlots: slots}
}

func newTestEngine() *ScheduleEngine {
	return NewScheduleEngine(NewTimezoneConverter())
}

func TestFindOptimalScheduleSingleInterviewer(t *testing.T) {
	engine := newTestEngine()

	req := &entity.ScheduleRequest{
		SchedulerID: "sched-1",
		Timezone:    "UTC",
		Users: map[string]entity.User{
			"int-1": {ID: "int-1", Name: "Dana", Email: "dana@example.com"},
		},
		CandidateAvailability: []entity.Availability{
			avail("cand-1", slot("2024-01-10", "09:30", "10:30")),
		},
		InterviewerAvailability: []entity.Availability{
			avail("int-1", slot("2024-01-10", "09:00", "10:00")),
		},
	}

	resp := engine.FindOptimalSchedule(req, &entity.SchedulingOptions{Duration: 30, BufferTime: 15})

	require.True(t, resp.Success)
	require.Len(t, resp.IndividualInterviews, 1)

	iv := resp.IndividualInterviews[0]
	assert.Equal(t, "int-1", iv.InterviewerID)
	assert.Equal(t, "Dana", iv.InterviewerName)
	assert.Equal(t, "2024-01-10", iv.Date)
	assert.Equal(t, "09:30", iv.StartTime)
	assert.Equal(t, "10:00", iv.EndTime)

	assert.Equal(t, "2024-01-10T09:30:00Z", resp.ScheduledTime)
	assert.Equal(t, "Interview scheduled with Dana on 2024-01-10 at 09:30", resp.Message)
	assert.Empty(t, resp.SuggestedTimes)
}

func TestFindOptimalScheduleIdenticalInterviewers(t *testing.T) {
	// Two interviewers share the identical 09:00-10:00 window with the
	// candidate. A 30-minute interview plus a 15-minute buffer cannot fit
	// twice inside one hour, so only the first interviewer is scheduled.
	engine := newTestEngine()

	req := &entity.ScheduleRequest{
		SchedulerID: "sched-1",
		Timezone:    "UTC",
		CandidateAvailability: []entity.Availability{
			avail("cand-1", slot("2024-01-10", "09:00", "10:00")),
		},
		InterviewerAvailability: []entity.Availability{
			avail("int-1", slot("2024-01-10", "09:00", "10:00")),
			avail("int-2", slot("2024-01-10", "09:00", "10:00")),
		},
	}

	resp := engine.FindOptimalSchedule(req, &entity.SchedulingOptions{Duration: 30, BufferTime: 15})

	require.True(t, resp.Success)
	require.Len(t, resp.IndividualInterviews, 1)
	assert.Equal(t, "int-1", resp.IndividualInterviews[0].InterviewerID)
	assert.Equal(t, "09:00", resp.IndividualInterviews[0].StartTime)
}

func TestFindOptimalScheduleMultipleInterviewersBufferSeparation(t *testing.T) {
	engine := newTestEngine()

	window := slot("2024-01-10", "09:00", "12:00")
	req := &entity.ScheduleRequest{
		SchedulerID: "sched-1",
		Timezone:    "UTC",
		CandidateAvailability: []entity.Availability{
			avail("cand-1", window),
		},
		InterviewerAvailability: []entity.Availability{
			avail("int-1", window),
			avail("int-2", window),
			avail("int-3", window),
		},
	}

	resp := engine.FindOptimalSchedule(req, &entity.SchedulingOptions{Duration: 30, BufferTime: 15})

	require.True(t, resp.Success)
	require.Len(t, resp.IndividualInterviews, 3)

	// Output preserves the order interviewers appeared in the request
	assert.Equal(t, "int-1", resp.IndividualInterviews[0].InterviewerID)
	assert.Equal(t, "int-2", resp.IndividualInterviews[1].InterviewerID)
	assert.Equal(t, "int-3", resp.IndividualInterviews[2].InterviewerID)

	// Every pair of same-date interviews clears the buffer
	for i, a := range resp.IndividualInterviews {
		for j, b := range resp.IndividualInterviews {
			if i == j || a.Date != b.Date {
				continue
			}
			aStart, err := ParseTime(a.StartTime)
			require.NoError(t, err)
			aEnd, err := ParseTime(a.EndTime)
			require.NoError(t, err)
			bStart, err := ParseTime(b.StartTime)
			require.NoError(t, err)
			bEnd, err := ParseTime(b.EndTime)
			require.NoError(t, err)

			separated := aStart.TotalMinutes >= bEnd.TotalMinutes+15 ||
				bStart.TotalMinutes >= aEnd.TotalMinutes+15
			assert.True(t, separated, "interviews %d and %d are not buffer-separated", i, j)
		}
	}

	assert.Equal(t, "Scheduled 3 interviews with at least 15 minutes between sessions", resp.Message)
}

func TestFindOptimalScheduleNoOverlap(t *testing.T) {
	engine := newTestEngine()

	req := &entity.ScheduleRequest{
		SchedulerID: "sched-1",
		Timezone:    "UTC",
		CandidateAvailability: []entity.Availability{
			avail("cand-1", slot("2024-01-10", "09:00", "10:00")),
		},
		InterviewerAvailability: []entity.Availability{
			avail("int-1", slot("2024-01-11", "09:00", "10:00")),
		},
	}

	resp := engine.FindOptimalSchedule(req, nil)

	assert.False(t, resp.Success)
	assert.Equal(t, msgNoOverlap, resp.Message)
	assert.Empty(t, resp.ScheduledTime)

	require.NotNil(t, resp.AvailabilitySummary)
	assert.Empty(t, resp.AvailabilitySummary.OverlappingDays)
	require.Len(t, resp.AvailabilitySummary.CandidateSlots, 1)
	assert.Equal(t, "2024-01-10", resp.AvailabilitySummary.CandidateSlots[0].Date)
	assert.Equal(t, []string{"09:00 - 10:00"}, resp.AvailabilitySummary.CandidateSlots[0].Slots)
}

func TestFindOptimalScheduleDeterministic(t *testing.T) {
	engine := newTestEngine()

	window := slot("2024-01-10", "08:00", "17:00")
	req := &entity.ScheduleRequest{
		SchedulerID: "sched-1",
		Timezone:    "America/New_York",
		CandidateAvailability: []entity.Availability{
			avail("cand-1", window, slot("2024-01-11", "10:00", "14:00")),
		},
		InterviewerAvailability: []entity.Availability{
			avail("int-1", window),
			avail("int-2", slot("2024-01-11", "09:00", "13:00")),
		},
	}
	opts := &entity.SchedulingOptions{Duration: 45, BufferTime: 30}

	first := engine.FindOptimalSchedule(req, opts)
	second := engine.FindOptimalSchedule(req, opts)

	assert.Equal(t, first, second)
}

func TestFindOptimalScheduleInternalFailureDowngraded(t *testing.T) {
	engine := NewScheduleEngine(failingConverter{})

	req := &entity.ScheduleRequest{
		SchedulerID: "sched-1",
		Timezone:    "UTC",
		CandidateAvailability: []entity.Availability{
			avail("cand-1", slot("2024-01-10", "09:00", "10:00")),
		},
		InterviewerAvailability: []entity.Availability{
			avail("int-1", slot("2024-01-10", "09:00", "10:00")),
		},
	}

	resp := engine.FindOptimalSchedule(req, nil)

	assert.False(t, resp.Success)
	assert.Equal(t, msgInternalFailure, resp.Message)
}

func TestFindOptimalScheduleRequestDurationWins(t *testing.T) {
	engine := newTestEngine()

	req := &entity.ScheduleRequest{
		SchedulerID:       "sched-1",
		Timezone:          "UTC",
		InterviewDuration: 90,
		CandidateAvailability: []entity.Availability{
			avail("cand-1", slot("2024-01-10", "09:00", "12:00")),
		},
		InterviewerAvailability: []entity.Availability{
			avail("int-1", slot("2024-01-10", "09:00", "12:00")),
		},
	}

	resp := engine.FindOptimalSchedule(req, &entity.SchedulingOptions{Duration: 30})

	require.True(t, resp.Success)
	require.Len(t, resp.IndividualInterviews, 1)

	iv := resp.IndividualInterviews[0]
	start, err := ParseTime(iv.StartTime)
	require.NoError(t, err)
	end, err := ParseTime(iv.EndTime)
	require.NoError(t, err)
	assert.Equal(t, 90, TimeDifference(start, end))
}

func TestFindOptimalScheduleUnknownInterviewerName(t *testing.T) {
	engine := newTestEngine()

	req := &entity.ScheduleRequest{
		SchedulerID: "sched-1",
		Timezone:    "UTC",
		CandidateAvailability: []entity.Availability{
			avail("cand-1", slot("2024-01-10", "09:00", "10:00")),
		},
		InterviewerAvailability: []entity.Availability{
			avail("interviewer-42", slot("2024-01-10", "09:00", "10:00")),
		},
	}

	resp := engine.FindOptimalSchedule(req, &entity.SchedulingOptions{Duration: 30})

	require.True(t, resp.Success)
	assert.Equal(t, "Interviewer intervie", resp.IndividualInterviews[0].InterviewerName)
}

func TestFindOptimalScheduleSuggestedTimesCapped(t *testing.T) {
	engine := newTestEngine()

	window := slot("2024-01-10", "08:00", "18:00")
	var interviewers []entity.Availability
	for i := 1; i <= 6; i++ {
		interviewers = append(interviewers, avail(fmt.Sprintf("int-%d", i), window))
	}

	req := &entity.ScheduleRequest{
		SchedulerID:             "sched-1",
		Timezone:                "UTC",
		CandidateAvailability:   []entity.Availability{avail("cand-1", window)},
		InterviewerAvailability: interviewers,
	}

	resp := engine.FindOptimalSchedule(req, &entity.SchedulingOptions{
		Duration:       30,
		BufferTime:     15,
		MaxSuggestions: 3,
	})

	require.True(t, resp.Success)
	assert.LessOrEqual(t, len(resp.SuggestedTimes), 2)
}

func TestGroupByInterviewerPreservesEncounterOrder(t *testing.T) {
	avails := []entity.Availability{
		avail("b", slot("2024-01-10", "09:00", "10:00")),
		avail("a", slot("2024-01-10", "10:00", "11:00")),
		avail("b", slot("2024-01-11", "09:00", "10:00")),
		avail("c", slot("2024-01-10", "11:00", "12:00")),
	}

	groups := groupByInterviewer(avails)

	require.Len(t, groups, 3)
	assert.Equal(t, "b", groups[0].ID)
	assert.Equal(t, "a", groups[1].ID)
	assert.Equal(t, "c", groups[2].ID)
	assert.Len(t, groups[0].Avails, 2)
	assert.Len(t, groups[1].Avails, 1)
}

func TestConflictsWithAssigned(t *testing.T) {
	assigned := []entity.TimeSlotMatch{
		{Date: "2024-01-10", StartTime: "09:00", EndTime: "09:30"},
	}

	tests := []struct {
		name     string
		date     string
		start    string
		end      string
		conflict bool
	}{
		{name: "inside existing", date: "2024-01-10", start: "09:10", end: "09:40", conflict: true},
		{name: "inside buffer tail", date: "2024-01-10", start: "09:40", end: "10:10", conflict: true},
		{name: "exactly at buffer boundary", date: "2024-01-10", start: "09:45", end: "10:15", conflict: false},
		{name: "well clear", date: "2024-01-10", start: "11:00", end: "11:30", conflict: false},
		{name: "before existing", date: "2024-01-10", start: "08:00", end: "08:30", conflict: false},
		{name: "other date", date: "2024-01-11", start: "09:10", end: "09:40", conflict: false},
		{
			// Buffer extends only the existing interval's end: a proposed
			// slot ending right at the existing start is acceptable.
			name: "ends at existing start", date: "2024-01-10", start: "08:30", end: "09:00", conflict: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := entity.TimeSlotMatch{Date: tt.date, StartTime: tt.start, EndTime: tt.end}
			assert.Equal(t, tt.conflict, conflictsWithAssigned(candidate, assigned, 15))
		})
	}
}

func TestResolveOptionsDefaults(t *testing.T) {
	engine := newTestEngine()

	options := engine.resolveOptions(&entity.ScheduleRequest{}, nil)

	assert.Equal(t, 60, options.Duration)
	assert.Equal(t, 15, options.BufferTime)
	assert.Equal(t, 9, options.BusinessHours.Start)
	assert.Equal(t, 17, options.BusinessHours.End)
	assert.Equal(t, 5, options.MaxSuggestions)
	assert.False(t, options.PreferNiceTimes)
}
