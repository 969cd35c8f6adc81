package dto

import (
	"time"

	"interview-scheduler/modules/availability/entity"
)

// ===================== Request DTOs =====================

// TimeSlotDTO is one offered window
type TimeSlotDTO struct {
	Date      string `json:"date" validate:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" validate:"required"` // HH:MM
	EndTime   string `json:"end_time" validate:"required"`   // HH:MM
}

// SubmitAvailabilityRequest replaces the caller's availability for a scheduler
type SubmitAvailabilityRequest struct {
	Role      string        `json:"role" validate:"required,oneof=candidate interviewer"`
	Timezone  string        `json:"timezone"`
	TimeSlots []TimeSlotDTO `json:"time_slots" validate:"required,min=1"`
}

// ===================== Response DTOs =====================

// AvailabilityResponse for one submission with its slots
type AvailabilityResponse struct {
	ID          string        `json:"id"`
	SchedulerID string        `json:"scheduler_id"`
	UserID      string        `json:"user_id"`
	Role        string        `json:"role"`
	Timezone    string        `json:"timezone"`
	TimeSlots   []TimeSlotDTO `json:"time_slots"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ===================== Mapper Functions =====================

// ToAvailabilityResponse maps a submission and its slots to a DTO
func ToAvailabilityResponse(sub *entity.AvailabilitySubmission, slots []entity.AvailabilitySlot) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		ID:          sub.ID.String(),
		SchedulerID: sub.SchedulerID.String(),
		UserID:      sub.UserID.String(),
		Role:        sub.Role,
		Timezone:    sub.Timezone,
		TimeSlots:   make([]TimeSlotDTO, 0, len(slots)),
		CreatedAt:   sub.CreatedAt,
	}

	for _, slot := range slots {
		resp.TimeSlots = append(resp.TimeSlots, TimeSlotDTO{
			Date:      slot.SlotDate,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	return resp
}
