package entity

import (
	"time"

	"github.com/google/uuid"
)

// SchedulerStatus represents the lifecycle of a scheduler
type SchedulerStatus string

const (
	SchedulerStatusPending   SchedulerStatus = "pending"
	SchedulerStatusScheduled SchedulerStatus = "scheduled"
	SchedulerStatusCancelled SchedulerStatus = "cancelled"
)

// Scheduler coordinates one interview between a candidate and the host's
// interviewers
type Scheduler struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	HostID          uuid.UUID       `db:"host_id" json:"host_id"`
	CandidateID     *uuid.UUID      `db:"candidate_id" json:"candidate_id,omitempty"`
	Title           string          `db:"title" json:"title"`
	Slug            string          `db:"slug" json:"slug"`
	PublicID        string          `db:"public_id" json:"public_id"`
	DurationMinutes int             `db:"duration_minutes" json:"duration_minutes"`
	BufferMinutes   int             `db:"buffer_minutes" json:"buffer_minutes"`
	Timezone        string          `db:"timezone" json:"timezone"`
	Status          SchedulerStatus `db:"status" json:"status"`
	ScheduledTime   *time.Time      `db:"scheduled_time" json:"scheduled_time,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}
