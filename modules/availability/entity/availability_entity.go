package entity

import (
	"time"

	"github.com/google/uuid"
)

// Submission roles
const (
	RoleCandidate   = "candidate"
	RoleInterviewer = "interviewer"
)

// AvailabilitySubmission is one person's offered time windows for one
// scheduler. Submitting again replaces the previous submission for the same
// (user, scheduler) pair; there is no slot-level merge.
type AvailabilitySubmission struct {
	ID          uuid.UUID `db:"id" json:"id"`
	SchedulerID uuid.UUID `db:"scheduler_id" json:"scheduler_id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	Role        string    `db:"role" json:"role"`
	Timezone    string    `db:"timezone" json:"timezone"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// AvailabilitySlot is one offered window within a submission. Position keeps
// the order the slots were submitted in; that order is meaningful downstream.
type AvailabilitySlot struct {
	ID             uuid.UUID `db:"id" json:"id"`
	AvailabilityID uuid.UUID `db:"availability_id" json:"availability_id"`
	SlotDate       string    `db:"slot_date" json:"slot_date"`   // YYYY-MM-DD
	StartTime      string    `db:"start_time" json:"start_time"` // HH:MM
	EndTime        string    `db:"end_time" json:"end_time"`     // HH:MM
	Position       int       `db:"position" json:"position"`
}
