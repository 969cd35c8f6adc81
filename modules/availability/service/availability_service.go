package service

import (
	"context"
	"strings"

	"interview-scheduler/core/errors"
	"interview-scheduler/core/logger"
	"interview-scheduler/modules/availability/dto"
	"interview-scheduler/modules/availability/entity"
	"interview-scheduler/modules/availability/repository"
	schedentity "interview-scheduler/modules/scheduling/entity"
	schedservice "interview-scheduler/modules/scheduling/service"

	"github.com/google/uuid"
)

// AvailabilityService handles availability submission business logic
type AvailabilityService struct {
	repo repository.AvailabilityRepositoryInterface
}

// AvailabilityServiceInterface defines the service contract
type AvailabilityServiceInterface interface {
	SubmitAvailability(ctx context.Context, schedulerID uuid.UUID, userID uuid.UUID, req *dto.SubmitAvailabilityRequest) (*dto.AvailabilityResponse, *errors.AppError)
	GetSchedulerAvailability(ctx context.Context, schedulerID uuid.UUID) ([]dto.AvailabilityResponse, *errors.AppError)
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(repo repository.AvailabilityRepositoryInterface) AvailabilityServiceInterface {
	return &AvailabilityService{repo: repo}
}

// SubmitAvailability validates and stores a submission, replacing any prior
// one by the same user for the same scheduler
func (s *AvailabilityService) SubmitAvailability(ctx context.Context, schedulerID uuid.UUID, userID uuid.UUID, req *dto.SubmitAvailabilityRequest) (*dto.AvailabilityResponse, *errors.AppError) {
	if req.Role != entity.RoleCandidate && req.Role != entity.RoleInterviewer {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "Role must be candidate or interviewer", nil)
	}

	// Structural validation with the engine's validator, so bad input never
	// reaches a matching run
	candidate := schedentity.Availability{
		UserID:      userID.String(),
		SchedulerID: schedulerID.String(),
		Timezone:    req.Timezone,
	}
	for _, slot := range req.TimeSlots {
		candidate.TimeSlots = append(candidate.TimeSlots, schedentity.TimeSlot{
			Date:      slot.Date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	if result := schedservice.ValidateAvailability([]schedentity.Availability{candidate}); !result.Valid {
		logger.Warn("AvailabilityService:SubmitAvailability:Invalid",
			"scheduler_id", schedulerID,
			"user_id", userID,
			"violations", result.Errors,
		)
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, strings.Join(result.Errors, "; "), nil)
	}

	sub := &entity.AvailabilitySubmission{
		SchedulerID: schedulerID,
		UserID:      userID,
		Role:        req.Role,
		Timezone:    req.Timezone,
	}

	slots := make([]entity.AvailabilitySlot, 0, len(req.TimeSlots))
	for _, slot := range req.TimeSlots {
		slots = append(slots, entity.AvailabilitySlot{
			SlotDate:  slot.Date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	created, err := s.repo.ReplaceSubmission(ctx, sub, slots)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to store availability", err)
	}

	logger.Info("AvailabilityService:SubmitAvailability:Stored",
		"scheduler_id", schedulerID,
		"user_id", userID,
		"role", req.Role,
		"slots", len(slots),
	)

	storedSlots, err := s.repo.GetSlotsBySubmissionID(ctx, created.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load stored availability", err)
	}

	return dto.ToAvailabilityResponse(created, storedSlots), nil
}

// GetSchedulerAvailability lists every current submission for a scheduler
func (s *AvailabilityService) GetSchedulerAvailability(ctx context.Context, schedulerID uuid.UUID) ([]dto.AvailabilityResponse, *errors.AppError) {
	submissions, err := s.repo.GetBySchedulerID(ctx, schedulerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load availability", err)
	}

	result := make([]dto.AvailabilityResponse, 0, len(submissions))
	for i := range submissions {
		slots, err := s.repo.GetSlotsBySubmissionID(ctx, submissions[i].ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load availability slots", err)
		}
		result = append(result, *dto.ToAvailabilityResponse(&submissions[i], slots))
	}

	return result, nil
}
