package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"interview-scheduler/core/cache"
	"interview-scheduler/core/config"
	"interview-scheduler/core/constants"
	"interview-scheduler/core/errors"
	"interview-scheduler/core/logger"
	"interview-scheduler/core/utils"
	"interview-scheduler/modules/scheduling/dto"
	"interview-scheduler/modules/scheduling/entity"
	"interview-scheduler/modules/scheduling/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// AvailabilityProvider supplies the most recent availability submission per
// user for one scheduler, split by role. Implemented by the availability
// module's repository.
type AvailabilityProvider interface {
	GetLatestPerUser(ctx context.Context, schedulerID uuid.UUID, role string) ([]entity.Availability, error)
}

// ScheduleNotifier consumes a finished schedule run. Implemented by the
// notification module's service.
type ScheduleNotifier interface {
	NotifyScheduleResult(ctx context.Context, scheduler *entity.Scheduler, response *entity.ScheduleResponse) error
}

// Availability submission roles
const (
	RoleCandidate   = "candidate"
	RoleInterviewer = "interviewer"
)

// SchedulerService handles scheduler business logic and drives the matching
// engine
type SchedulerService struct {
	repo         repository.SchedulerRepositoryInterface
	availability AvailabilityProvider
	notifier     ScheduleNotifier
	engine       *ScheduleEngine
	cache        *cache.Cache
}

// SchedulerServiceInterface defines the service contract
type SchedulerServiceInterface interface {
	CreateScheduler(ctx context.Context, hostID uuid.UUID, req *dto.CreateSchedulerRequest) (*dto.SchedulerResponse, *errors.AppError)
	GetSchedulerByID(ctx context.Context, id uuid.UUID) (*dto.SchedulerResponse, *errors.AppError)
	GetMySchedulers(ctx context.Context, hostID uuid.UUID) ([]dto.SchedulerResponse, *errors.AppError)
	DeleteScheduler(ctx context.Context, schedulerID uuid.UUID, hostID uuid.UUID) *errors.AppError
	RunSchedule(ctx context.Context, schedulerID uuid.UUID, hostID uuid.UUID, req *dto.RunScheduleRequest) (*entity.ScheduleResponse, *errors.AppError)
	GetStats(ctx context.Context, schedulerID uuid.UUID) (*entity.SchedulingStats, *errors.AppError)
}

// NewSchedulerService creates a new scheduler service
func NewSchedulerService(
	repo repository.SchedulerRepositoryInterface,
	availability AvailabilityProvider,
	notifier ScheduleNotifier,
	c *cache.Cache,
) SchedulerServiceInterface {
	return &SchedulerService{
		repo:         repo,
		availability: availability,
		notifier:     notifier,
		engine:       NewScheduleEngine(NewTimezoneConverter()),
		cache:        c,
	}
}

// CreateScheduler creates a new interview scheduler
func (s *SchedulerService) CreateScheduler(ctx context.Context, hostID uuid.UUID, req *dto.CreateSchedulerRequest) (*dto.SchedulerResponse, *errors.AppError) {
	duration := req.DurationMinutes
	if duration <= 0 {
		duration = constants.DefaultInterviewDuration
	}
	buffer := req.BufferMinutes
	if buffer <= 0 {
		buffer = constants.DefaultBufferTime
	}

	timezone := req.Timezone
	if timezone == "" {
		if cfg, ok := config.GetSafe(); ok {
			timezone = cfg.Scheduling.DefaultTimezone
		} else {
			timezone = "UTC"
		}
	}

	scheduler := &entity.Scheduler{
		HostID:          hostID,
		Title:           req.Title,
		Slug:            slug.Make(req.Title),
		PublicID:        utils.GenerateID(),
		DurationMinutes: duration,
		BufferMinutes:   buffer,
		Timezone:        timezone,
		Status:          entity.SchedulerStatusPending,
	}

	if req.CandidateID != "" {
		candidateID, err := uuid.Parse(req.CandidateID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid candidate ID", err)
		}
		scheduler.CandidateID = &candidateID
	}

	created, err := s.repo.CreateScheduler(ctx, scheduler)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create scheduler", err)
	}

	return dto.ToSchedulerResponse(created), nil
}

// GetSchedulerByID retrieves a scheduler by ID
func (s *SchedulerService) GetSchedulerByID(ctx context.Context, id uuid.UUID) (*dto.SchedulerResponse, *errors.AppError) {
	scheduler, err := s.repo.GetSchedulerByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get scheduler", err)
	}
	if scheduler == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Scheduler not found", nil)
	}

	return dto.ToSchedulerResponse(scheduler), nil
}

// GetMySchedulers retrieves all schedulers for a host
func (s *SchedulerService) GetMySchedulers(ctx context.Context, hostID uuid.UUID) ([]dto.SchedulerResponse, *errors.AppError) {
	schedulers, err := s.repo.GetSchedulersByHostID(ctx, hostID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get schedulers", err)
	}

	result := make([]dto.SchedulerResponse, 0, len(schedulers))
	for i := range schedulers {
		result = append(result, *dto.ToSchedulerResponse(&schedulers[i]))
	}

	return result, nil
}

// DeleteScheduler deletes a scheduler owned by the host
func (s *SchedulerService) DeleteScheduler(ctx context.Context, schedulerID uuid.UUID, hostID uuid.UUID) *errors.AppError {
	scheduler, err := s.repo.GetSchedulerByID(ctx, schedulerID)
	if err != nil || scheduler == nil {
		return errors.NewAppError(errors.ErrNotFound, "Scheduler not found", err)
	}

	if scheduler.HostID != hostID {
		return errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}

	if err := s.repo.DeleteScheduler(ctx, schedulerID); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to delete scheduler", err)
	}

	return nil
}

// RunSchedule loads the latest availability per participant, validates it,
// runs the matching engine, and persists the chosen time on success.
// Infeasibility is returned as a normal failure response, not an error.
func (s *SchedulerService) RunSchedule(ctx context.Context, schedulerID uuid.UUID, hostID uuid.UUID, req *dto.RunScheduleRequest) (*entity.ScheduleResponse, *errors.AppError) {
	logger.Info("SchedulerService:RunSchedule:Start", "scheduler_id", schedulerID, "host_id", hostID)

	scheduler, err := s.repo.GetSchedulerByID(ctx, schedulerID)
	if err != nil || scheduler == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Scheduler not found", err)
	}

	if scheduler.HostID != hostID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}

	candidateAvails, err := s.availability.GetLatestPerUser(ctx, schedulerID, RoleCandidate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load candidate availability", err)
	}
	interviewerAvails, err := s.availability.GetLatestPerUser(ctx, schedulerID, RoleInterviewer)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load interviewer availability", err)
	}

	// The engine does not re-validate; malformed input must be rejected here
	if result := ValidateAvailability(candidateAvails); !result.Valid {
		logger.Warn("SchedulerService:RunSchedule:InvalidCandidateAvailability", "scheduler_id", schedulerID, "violations", result.Errors)
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Candidate availability is invalid: "+strings.Join(result.Errors, "; "), nil)
	}
	if result := ValidateAvailability(interviewerAvails); !result.Valid {
		logger.Warn("SchedulerService:RunSchedule:InvalidInterviewerAvailability", "scheduler_id", schedulerID, "violations", result.Errors)
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Interviewer availability is invalid: "+strings.Join(result.Errors, "; "), nil)
	}

	users, err := s.loadUserDirectory(ctx, candidateAvails, interviewerAvails)
	if err != nil {
		logger.Warn("SchedulerService:RunSchedule:UserDirectoryUnavailable", "error", err)
		// Engine synthesizes display names when the directory is missing
		users = nil
	}

	scheduleReq := &entity.ScheduleRequest{
		SchedulerID:             schedulerID.String(),
		Timezone:                scheduler.Timezone,
		InterviewDuration:       scheduler.DurationMinutes,
		CandidateAvailability:   candidateAvails,
		InterviewerAvailability: interviewerAvails,
		Users:                   users,
	}

	opts := entity.SchedulingOptions{
		BufferTime: scheduler.BufferMinutes,
	}
	if req != nil {
		if req.DurationMinutes > 0 {
			scheduleReq.InterviewDuration = req.DurationMinutes
		}
		if req.BufferMinutes > 0 {
			opts.BufferTime = req.BufferMinutes
		}
		if req.MaxSuggestions > 0 {
			opts.MaxSuggestions = req.MaxSuggestions
		}
		opts.PreferNiceTimes = req.PreferNiceTimes
	}

	response := s.engine.FindOptimalSchedule(scheduleReq, &opts)

	if response.Success {
		scheduledTime, parseErr := time.Parse(time.RFC3339, response.ScheduledTime)
		if parseErr != nil {
			logger.Error("SchedulerService:RunSchedule:InvalidScheduledTime", "error", parseErr, "scheduled_time", response.ScheduledTime)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to persist scheduled time", parseErr)
		}
		if err := s.repo.SetScheduledTime(ctx, schedulerID, scheduledTime); err != nil {
			return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to persist scheduled time", err)
		}
		logger.Info("SchedulerService:RunSchedule:Scheduled",
			"scheduler_id", schedulerID,
			"scheduled_time", response.ScheduledTime,
			"interviews", len(response.IndividualInterviews),
		)
	} else {
		logger.Info("SchedulerService:RunSchedule:NoMatch", "scheduler_id", schedulerID, "message", response.Message)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyScheduleResult(ctx, scheduler, response); err != nil {
			logger.Warn("SchedulerService:RunSchedule:NotifyFailed", "error", err, "scheduler_id", schedulerID)
		}
	}

	return response, nil
}

// GetStats reports overlap capacity for a scheduler, cached briefly in redis
func (s *SchedulerService) GetStats(ctx context.Context, schedulerID uuid.UUID) (*entity.SchedulingStats, *errors.AppError) {
	cacheKey := constants.RedisKeyScheduleStats + schedulerID.String()

	if s.cache != nil {
		if cached, err := s.cache.GetString(ctx, cacheKey); err == nil && cached != "" {
			var stats entity.SchedulingStats
			if jsonErr := json.Unmarshal([]byte(cached), &stats); jsonErr == nil {
				return &stats, nil
			}
		}
	}

	scheduler, err := s.repo.GetSchedulerByID(ctx, schedulerID)
	if err != nil || scheduler == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Scheduler not found", err)
	}

	candidateAvails, err := s.availability.GetLatestPerUser(ctx, schedulerID, RoleCandidate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load candidate availability", err)
	}
	interviewerAvails, err := s.availability.GetLatestPerUser(ctx, schedulerID, RoleInterviewer)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load interviewer availability", err)
	}

	stats := GetSchedulingStats(candidateAvails, interviewerAvails)

	if s.cache != nil {
		if encoded, jsonErr := json.Marshal(stats); jsonErr == nil {
			if err := s.cache.Set(ctx, cacheKey, string(encoded), constants.ScheduleStatsCacheTTL); err != nil {
				logger.Warn("SchedulerService:GetStats:CacheSetFailed", "error", err)
			}
		}
	}

	return &stats, nil
}

func (s *SchedulerService) loadUserDirectory(ctx context.Context, availSets ...[]entity.Availability) (map[string]entity.User, error) {
	var ids []string
	seen := make(map[string]bool)
	for _, avails := range availSets {
		for _, avail := range avails {
			if !seen[avail.UserID] {
				seen[avail.UserID] = true
				ids = append(ids, avail.UserID)
			}
		}
	}
	return s.repo.GetUsersByIDs(ctx, ids)
}
