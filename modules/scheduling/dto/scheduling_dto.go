package dto

import (
	"time"

	"interview-scheduler/modules/scheduling/entity"
)

// ===================== Request DTOs =====================

// CreateSchedulerRequest for creating a new interview scheduler
type CreateSchedulerRequest struct {
	Title           string `json:"title" validate:"required"`
	CandidateID     string `json:"candidate_id"`
	DurationMinutes int    `json:"duration_minutes" validate:"min=0,max=480"`
	BufferMinutes   int    `json:"buffer_minutes" validate:"min=0,max=240"`
	Timezone        string `json:"timezone"`
}

// RunScheduleRequest carries per-run overrides for the matching engine
type RunScheduleRequest struct {
	DurationMinutes int  `json:"duration_minutes"`
	BufferMinutes   int  `json:"buffer_minutes"`
	MaxSuggestions  int  `json:"max_suggestions"`
	PreferNiceTimes bool `json:"prefer_nice_times"`
}

// ===================== Response DTOs =====================

// SchedulerResponse for scheduler details
type SchedulerResponse struct {
	ID              string     `json:"id"`
	HostID          string     `json:"host_id"`
	CandidateID     string     `json:"candidate_id,omitempty"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	PublicID        string     `json:"public_id"`
	DurationMinutes int        `json:"duration_minutes"`
	BufferMinutes   int        `json:"buffer_minutes"`
	Timezone        string     `json:"timezone"`
	Status          string     `json:"status"`
	ScheduledTime   *time.Time `json:"scheduled_time,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ===================== Mapper Functions =====================

// ToSchedulerResponse maps entity to DTO
func ToSchedulerResponse(s *entity.Scheduler) *SchedulerResponse {
	resp := &SchedulerResponse{
		ID:              s.ID.String(),
		HostID:          s.HostID.String(),
		Title:           s.Title,
		Slug:            s.Slug,
		PublicID:        s.PublicID,
		DurationMinutes: s.DurationMinutes,
		BufferMinutes:   s.BufferMinutes,
		Timezone:        s.Timezone,
		Status:          string(s.Status),
		ScheduledTime:   s.ScheduledTime,
		CreatedAt:       s.CreatedAt,
	}

	if s.CandidateID != nil {
		resp.CandidateID = s.CandidateID.String()
	}

	return resp
}
