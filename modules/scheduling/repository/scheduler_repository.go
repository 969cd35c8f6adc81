package repository

import (
	"context"
	"database/sql"
	"time"

	"interview-scheduler/core/database"
	"interview-scheduler/core/logger"
	"interview-scheduler/modules/scheduling/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SchedulerRepository handles scheduler database operations
type SchedulerRepository struct {
	DB database.IDatabase
}

func NewSchedulerRepository(db database.IDatabase) *SchedulerRepository {
	return &SchedulerRepository{DB: db}
}

// SchedulerRepositoryInterface defines the repository contract
type SchedulerRepositoryInterface interface {
	CreateScheduler(ctx context.Context, scheduler *entity.Scheduler) (*entity.Scheduler, error)
	GetSchedulerByID(ctx context.Context, id uuid.UUID) (*entity.Scheduler, error)
	GetSchedulersByHostID(ctx context.Context, hostID uuid.UUID) ([]entity.Scheduler, error)
	DeleteScheduler(ctx context.Context, id uuid.UUID) error
	SetScheduledTime(ctx context.Context, id uuid.UUID, scheduledTime time.Time) error
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]entity.User, error)
}

func (r *SchedulerRepository) CreateScheduler(ctx context.Context, scheduler *entity.Scheduler) (*entity.Scheduler, error) {
	query := `
		INSERT INTO schedulers (host_id, candidate_id, title, slug, public_id, duration_minutes, buffer_minutes, timezone, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, host_id, candidate_id, title, slug, public_id, duration_minutes, buffer_minutes,
		          timezone, status, scheduled_time, created_at, updated_at
	`

	var created entity.Scheduler
	err := r.DB.GetContext(ctx, &created, query,
		scheduler.HostID, scheduler.CandidateID, scheduler.Title, scheduler.Slug, scheduler.PublicID,
		scheduler.DurationMinutes, scheduler.BufferMinutes, scheduler.Timezone, scheduler.Status)

	if err != nil {
		logger.Error("SchedulerRepository:CreateScheduler", err)
		return nil, err
	}

	return &created, nil
}

func (r *SchedulerRepository) GetSchedulerByID(ctx context.Context, id uuid.UUID) (*entity.Scheduler, error) {
	query := `
		SELECT id, host_id, candidate_id, title, slug, public_id, duration_minutes, buffer_minutes,
		       timezone, status, scheduled_time, created_at, updated_at
		FROM schedulers WHERE id = $1
	`

	var scheduler entity.Scheduler
	err := r.DB.GetContext(ctx, &scheduler, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SchedulerRepository:GetSchedulerByID", err)
		return nil, err
	}

	return &scheduler, nil
}

func (r *SchedulerRepository) GetSchedulersByHostID(ctx context.Context, hostID uuid.UUID) ([]entity.Scheduler, error) {
	query := `
		SELECT id, host_id, candidate_id, title, slug, public_id, duration_minutes, buffer_minutes,
		       timezone, status, scheduled_time, created_at, updated_at
		FROM schedulers
		WHERE host_id = $1
		ORDER BY created_at DESC
	`

	var schedulers []entity.Scheduler
	err := r.DB.SelectContext(ctx, &schedulers, query, hostID)
	if err != nil {
		logger.Error("SchedulerRepository:GetSchedulersByHostID", err)
		return nil, err
	}

	return schedulers, nil
}

func (r *SchedulerRepository) DeleteScheduler(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM schedulers WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("SchedulerRepository:DeleteScheduler", err)
		return err
	}
	return nil
}

// SetScheduledTime persists the engine's chosen instant and flips the
// scheduler to scheduled. This is the matching run's only durable side
// effect; the engine itself never writes.
func (r *SchedulerRepository) SetScheduledTime(ctx context.Context, id uuid.UUID, scheduledTime time.Time) error {
	query := `
		UPDATE schedulers
		SET scheduled_time = $2, status = $3, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query, id, scheduledTime, entity.SchedulerStatusScheduled)
	if err != nil {
		logger.Error("SchedulerRepository:SetScheduledTime", err)
		return err
	}
	return nil
}

func (r *SchedulerRepository) GetUsersByIDs(ctx context.Context, ids []string) (map[string]entity.User, error) {
	if len(ids) == 0 {
		return map[string]entity.User{}, nil
	}

	query := `SELECT id, name, email FROM users WHERE id = ANY($1)`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		logger.Error("SchedulerRepository:GetUsersByIDs", err)
		return nil, err
	}
	defer rows.Close()

	users := make(map[string]entity.User, len(ids))
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			logger.Error("SchedulerRepository:GetUsersByIDs:Scan", err)
			return nil, err
		}
		users[u.ID] = u
	}

	return users, rows.Err()
}
