package repository

import (
	"context"

	"interview-scheduler/core/database"
	"interview-scheduler/core/logger"
	"interview-scheduler/modules/availability/entity"
	schedentity "interview-scheduler/modules/scheduling/entity"

	"github.com/google/uuid"
)

// AvailabilityRepository handles availability database operations
type AvailabilityRepository struct {
	DB database.IDatabase
}

func NewAvailabilityRepository(db database.IDatabase) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

// AvailabilityRepositoryInterface defines the repository contract
type AvailabilityRepositoryInterface interface {
	ReplaceSubmission(ctx context.Context, sub *entity.AvailabilitySubmission, slots []entity.AvailabilitySlot) (*entity.AvailabilitySubmission, error)
	GetBySchedulerID(ctx context.Context, schedulerID uuid.UUID) ([]entity.AvailabilitySubmission, error)
	GetSlotsBySubmissionID(ctx context.Context, submissionID uuid.UUID) ([]entity.AvailabilitySlot, error)
	GetLatestPerUser(ctx context.Context, schedulerID uuid.UUID, role string) ([]schedentity.Availability, error)
}

// ReplaceSubmission atomically replaces any prior submission for the same
// (user, scheduler) pair with the new one.
func (r *AvailabilityRepository) ReplaceSubmission(ctx context.Context, sub *entity.AvailabilitySubmission, slots []entity.AvailabilitySlot) (*entity.AvailabilitySubmission, error) {
	tx, err := r.DB.BeginTxx(ctx)
	if err != nil {
		logger.Error("AvailabilityRepository:ReplaceSubmission:Begin", err)
		return nil, err
	}
	defer tx.Rollback()

	deleteQuery := `DELETE FROM availabilities WHERE scheduler_id = $1 AND user_id = $2`
	if _, err := tx.ExecContext(ctx, deleteQuery, sub.SchedulerID, sub.UserID); err != nil {
		logger.Error("AvailabilityRepository:ReplaceSubmission:Delete", err)
		return nil, err
	}

	insertQuery := `
		INSERT INTO availabilities (scheduler_id, user_id, role, timezone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, scheduler_id, user_id, role, timezone, created_at, updated_at
	`
	var created entity.AvailabilitySubmission
	if err := tx.GetContext(ctx, &created, insertQuery, sub.SchedulerID, sub.UserID, sub.Role, sub.Timezone); err != nil {
		logger.Error("AvailabilityRepository:ReplaceSubmission:Insert", err)
		return nil, err
	}

	slotQuery := `
		INSERT INTO availability_slots (availability_id, slot_date, start_time, end_time, position)
		VALUES ($1, $2, $3, $4, $5)
	`
	for i, slot := range slots {
		if _, err := tx.ExecContext(ctx, slotQuery, created.ID, slot.SlotDate, slot.StartTime, slot.EndTime, i); err != nil {
			logger.Error("AvailabilityRepository:ReplaceSubmission:InsertSlot", err)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("AvailabilityRepository:ReplaceSubmission:Commit", err)
		return nil, err
	}

	return &created, nil
}

func (r *AvailabilityRepository) GetBySchedulerID(ctx context.Context, schedulerID uuid.UUID) ([]entity.AvailabilitySubmission, error) {
	query := `
		SELECT id, scheduler_id, user_id, role, timezone, created_at, updated_at
		FROM availabilities
		WHERE scheduler_id = $1
		ORDER BY created_at, id
	`

	var submissions []entity.AvailabilitySubmission
	err := r.DB.SelectContext(ctx, &submissions, query, schedulerID)
	if err != nil {
		logger.Error("AvailabilityRepository:GetBySchedulerID", err)
		return nil, err
	}

	return submissions, nil
}

func (r *AvailabilityRepository) GetSlotsBySubmissionID(ctx context.Context, submissionID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	query := `
		SELECT id, availability_id, slot_date, start_time, end_time, position
		FROM availability_slots
		WHERE availability_id = $1
		ORDER BY position
	`

	var slots []entity.AvailabilitySlot
	err := r.DB.SelectContext(ctx, &slots, query, submissionID)
	if err != nil {
		logger.Error("AvailabilityRepository:GetSlotsBySubmissionID", err)
		return nil, err
	}

	return slots, nil
}

// GetLatestPerUser returns each user's current submission for a scheduler as
// engine-ready availability values. Submissions are replaced atomically on
// resubmit, so the current row per user is the most recent one; ordering by
// created_at keeps the engine's interviewer encounter order stable across
// runs.
func (r *AvailabilityRepository) GetLatestPerUser(ctx context.Context, schedulerID uuid.UUID, role string) ([]schedentity.Availability, error) {
	query := `
		SELECT a.id, a.scheduler_id, a.user_id, a.timezone,
		       s.slot_date, s.start_time, s.end_time
		FROM availabilities a
		JOIN availability_slots s ON s.availability_id = a.id
		WHERE a.scheduler_id = $1 AND a.role = $2
		ORDER BY a.created_at, a.id, s.position
	`

	rows, err := r.DB.QueryContext(ctx, query, schedulerID, role)
	if err != nil {
		logger.Error("AvailabilityRepository:GetLatestPerUser", err)
		return nil, err
	}
	defer rows.Close()

	var result []schedentity.Availability
	index := make(map[string]int)

	for rows.Next() {
		var submissionID, schedID, userID, timezone, date, start, end string
		if err := rows.Scan(&submissionID, &schedID, &userID, &timezone, &date, &start, &end); err != nil {
			logger.Error("AvailabilityRepository:GetLatestPerUser:Scan", err)
			return nil, err
		}

		i, ok := index[submissionID]
		if !ok {
			i = len(result)
			index[submissionID] = i
			result = append(result, schedentity.Availability{
				UserID:      userID,
				SchedulerID: schedID,
				Timezone:    timezone,
			})
		}
		result[i].TimeSlots = append(result[i].TimeSlots, schedentity.TimeSlot{
			Date:      date,
			StartTime: start,
			EndTime:   end,
		})
	}

	return result, rows.Err()
}
