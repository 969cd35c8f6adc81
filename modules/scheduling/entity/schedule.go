package entity

import "time"

// TimeSlot is one offered window on a single calendar date.
// StartTime must precede EndTime within the same date; slot generation never
// produces overnight spans.
type TimeSlot struct {
	Date      string `json:"date"`       // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:MM, 24-hour
	EndTime   string `json:"end_time"`   // HH:MM, 24-hour
}

// Availability is one person's complete submission of offered windows for one
// scheduler. A resubmission fully replaces the prior one; there is no
// slot-level merge.
type Availability struct {
	UserID      string     `json:"user_id"`
	SchedulerID string     `json:"scheduler_id"`
	TimeSlots   []TimeSlot `json:"time_slots"`
	Timezone    string     `json:"timezone"`
}

// User is the optional directory entry used for display-name composition
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BusinessHours bounds the preferred start hours for scoring
type BusinessHours struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// SchedulingOptions configures one engine invocation. It is a value passed
// per call, never process-wide state, and is not mutated after construction.
type SchedulingOptions struct {
	Duration        int            `json:"duration"`    // minutes
	BufferTime      int            `json:"buffer_time"` // minutes between candidate sessions
	BusinessHours   BusinessHours  `json:"business_hours"`
	PreferredDays   []time.Weekday `json:"preferred_days"`
	MaxSuggestions  int            `json:"max_suggestions"`
	PreferNiceTimes bool           `json:"prefer_nice_times"` // score-based slot selection instead of first-fit
}

// TimeSlotMatch is a candidate interview slot produced during one matching
// run. It exists only within that run.
type TimeSlotMatch struct {
	Date            string   `json:"date"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	Duration        int      `json:"duration"`
	Score           int      `json:"score"`
	Reasons         []string `json:"reasons"`
	InterviewerID   string   `json:"interviewer_id,omitempty"`
	InterviewerName string   `json:"interviewer_name,omitempty"`
}

// ScheduleRequest is the engine's input envelope
type ScheduleRequest struct {
	SchedulerID             string          `json:"scheduler_id"`
	Timezone                string          `json:"timezone"`
	InterviewDuration       int             `json:"interview_duration"` // minutes; 0 falls back to 60
	CandidateAvailability   []Availability  `json:"candidate_availability"`
	InterviewerAvailability []Availability  `json:"interviewer_availability"`
	Users                   map[string]User `json:"users,omitempty"`
}

// InterviewAssignment is one interviewer's assigned slot with resolved name
type InterviewAssignment struct {
	InterviewerID   string `json:"interviewer_id"`
	InterviewerName string `json:"interviewer_name"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	ScheduledTime   string `json:"scheduled_time"` // RFC3339 instant
}

// DateSlots lists the windows offered on one date, in submission order
type DateSlots struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"` // "HH:MM - HH:MM"
}

// AvailabilitySummary is the date-bucketed view of both sides' submissions
type AvailabilitySummary struct {
	CandidateSlots   []DateSlots `json:"candidate_slots"`
	InterviewerSlots []DateSlots `json:"interviewer_slots"`
	OverlappingDays  []string    `json:"overlapping_days"`
}

// ScheduleResponse is the engine's output envelope
type ScheduleResponse struct {
	Success              bool                  `json:"success"`
	ScheduledTime        string                `json:"scheduled_time,omitempty"` // RFC3339, present only on success
	Message              string                `json:"message"`
	SuggestedTimes       []string              `json:"suggested_times,omitempty"`
	AllAvailableSlots    []TimeSlotMatch       `json:"all_available_slots,omitempty"`
	AvailabilitySummary  *AvailabilitySummary  `json:"availability_summary,omitempty"`
	IndividualInterviews []InterviewAssignment `json:"individual_interviews,omitempty"`
}

// ValidationResult collects every structural violation found in a set of
// availability submissions
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// SchedulingStats reports raw overlap capacity between two sides, independent
// of buffer and conflict logic
type SchedulingStats struct {
	TotalCandidateSlots   int     `json:"total_candidate_slots"`
	TotalInterviewerSlots int     `json:"total_interviewer_slots"`
	OverlappingDays       int     `json:"overlapping_days"`
	TotalOverlappingHours float64 `json:"total_overlapping_hours"`
}
