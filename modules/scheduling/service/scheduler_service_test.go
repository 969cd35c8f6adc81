package service

import (
	"context"
	"testing"
	"time"

	"interview-scheduler/core/errors"
	"interview-scheduler/modules/scheduling/dto"
	"interview-scheduler/modules/scheduling/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSchedulerRepo struct {
	schedulers    map[uuid.UUID]*entity.Scheduler
	users         map[string]entity.User
	scheduledTime *time.Time
	deleted       []uuid.UUID
}

func newFakeSchedulerRepo() *fakeSchedulerRepo {
	return &fakeSchedulerRepo{
		schedulers: make(map[uuid.UUID]*entity.Scheduler),
		users:      make(map[string]entity.User),
	}
}

func (f *fakeSchedulerRepo) CreateScheduler(ctx context.Context, scheduler *entity.Scheduler) (*entity.Scheduler, error) {
	created := *scheduler
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.schedulers[created.ID] = &created
	return &created, nil
}

func (f *fakeSchedulerRepo) GetSchedulerByID(ctx context.Context, id uuid.UUID) (*entity.Scheduler, error) {
	return f.schedulers[id], nil
}

func (f *fakeSchedulerRepo) GetSchedulersByHostID(ctx context.Context, hostID uuid.UUID) ([]entity.Scheduler, error) {
	var out []entity.Scheduler
	for _, s := range f.schedulers {
		if s.HostID == hostID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSchedulerRepo) DeleteScheduler(ctx context.Context, id uuid.UUID) error {
	delete(f.schedulers, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSchedulerRepo) SetScheduledTime(ctx context.Context, id uuid.UUID, scheduledTime time.Time) error {
	f.scheduledTime = &scheduledTime
	if s, ok := f.schedulers[id]; ok {
		s.ScheduledTime = &scheduledTime
		s.Status = entity.SchedulerStatusScheduled
	}
	return nil
}

func (f *fakeSchedulerRepo) GetUsersByIDs(ctx context.Context, ids []string) (map[string]entity.User, error) {
	out := make(map[string]entity.User)
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

type fakeProvider struct {
	candidate   []entity.Availability
	interviewer []entity.Availability
}

func (f *fakeProvider) GetLatestPerUser(ctx context.Context, schedulerID uuid.UUID, role string) ([]entity.Availability, error) {
	if role == RoleCandidate {
		return f.candidate, nil
	}
	return f.interviewer, nil
}

type recordingNotifier struct {
	calls     int
	lastResp  *entity.ScheduleResponse
	lastSched *entity.Scheduler
}

func (r *recordingNotifier) NotifyScheduleResult(ctx context.Context, scheduler *entity.Scheduler, response *entity.ScheduleResponse) error {
	r.calls++
	r.lastSched = scheduler
	r.lastResp = response
	return nil
}

func TestCreateScheduler(t *testing.T) {
	repo := newFakeSchedulerRepo()
	svc := NewSchedulerService(repo, &fakeProvider{}, nil, nil)

	hostID := uuid.New()
	resp, appErr := svc.CreateScheduler(context.Background(), hostID, &dto.CreateSchedulerRequest{
		Title: "Backend Engineer Final Round",
	})

	require.Nil(t, appErr)
	assert.Equal(t, hostID.String(), resp.HostID)
	assert.Equal(t, "backend-engineer-final-round", resp.Slug)
	assert.NotEmpty(t, resp.PublicID)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, 15, resp.BufferMinutes)
	assert.Equal(t, string(entity.SchedulerStatusPending), resp.Status)
}

func TestCreateSchedulerInvalidCandidateID(t *testing.T) {
	svc := NewSchedulerService(newFakeSchedulerRepo(), &fakeProvider{}, nil, nil)

	_, appErr := svc.CreateScheduler(context.Background(), uuid.New(), &dto.CreateSchedulerRequest{
		Title:       "Interview",
		CandidateID: "not-a-uuid",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestDeleteSchedulerRequiresOwnership(t *testing.T) {
	repo := newFakeSchedulerRepo()
	svc := NewSchedulerService(repo, &fakeProvider{}, nil, nil)

	hostID := uuid.New()
	created, appErr := svc.CreateScheduler(context.Background(), hostID, &dto.CreateSchedulerRequest{Title: "Interview"})
	require.Nil(t, appErr)
	schedulerID := uuid.MustParse(created.ID)

	appErr = svc.DeleteScheduler(context.Background(), schedulerID, uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)

	appErr = svc.DeleteScheduler(context.Background(), schedulerID, hostID)
	assert.Nil(t, appErr)
	assert.Len(t, repo.deleted, 1)
}

func TestRunSchedulePersistsAndNotifies(t *testing.T) {
	repo := newFakeSchedulerRepo()
	provider := &fakeProvider{
		candidate: []entity.Availability{
			avail("cand-1", slot("2024-01-10", "09:30", "10:30")),
		},
		interviewer: []entity.Availability{
			avail("int-1", slot("2024-01-10", "09:00", "10:00")),
		},
	}
	notifier := &recordingNotifier{}
	svc := NewSchedulerService(repo, provider, notifier, nil)

	hostID := uuid.New()
	created, appErr := svc.CreateScheduler(context.Background(), hostID, &dto.CreateSchedulerRequest{
		Title:           "Interview",
		DurationMinutes: 30,
		BufferMinutes:   15,
		Timezone:        "UTC",
	})
	require.Nil(t, appErr)
	schedulerID := uuid.MustParse(created.ID)

	resp, appErr := svc.RunSchedule(context.Background(), schedulerID, hostID, nil)

	require.Nil(t, appErr)
	require.True(t, resp.Success)
	assert.Equal(t, "2024-01-10T09:30:00Z", resp.ScheduledTime)

	require.NotNil(t, repo.scheduledTime)
	assert.Equal(t, time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC), repo.scheduledTime.UTC())
	assert.Equal(t, entity.SchedulerStatusScheduled, repo.schedulers[schedulerID].Status)

	assert.Equal(t, 1, notifier.calls)
	assert.True(t, notifier.lastResp.Success)
}

func TestRunScheduleNoOverlapStillNotifies(t *testing.T) {
	repo := newFakeSchedulerRepo()
	provider := &fakeProvider{
		candidate: []entity.Availability{
			avail("cand-1", slot("2024-01-10", "09:00", "10:00")),
		},
		interviewer: []entity.Availability{
			avail("int-1", slot("2024-02-20", "09:00", "10:00")),
		},
	}
	notifier := &recordingNotifier{}
	svc := NewSchedulerService(repo, provider, notifier, nil)

	hostID := uuid.New()
	created, appErr := svc.CreateScheduler(context.Background(), hostID, &dto.CreateSchedulerRequest{Title: "Interview"})
	require.Nil(t, appErr)
	schedulerID := uuid.MustParse(created.ID)

	resp, appErr := svc.RunSchedule(context.Background(), schedulerID, hostID, nil)

	require.Nil(t, appErr)
	assert.False(t, resp.Success)
	assert.Nil(t, repo.scheduledTime)

	// Infeasibility is a normal outcome and still produces a notification
	assert.Equal(t, 1, notifier.calls)
	assert.False(t, notifier.lastResp.Success)
}

func TestRunScheduleRejectsInvalidAvailability(t *testing.T) {
	repo := newFakeSchedulerRepo()
	provider := &fakeProvider{
		candidate: []entity.Availability{
			avail("cand-1", slot("2024-1-1", "09:00", "10:00")),
		},
		interviewer: []entity.Availability{
			avail("int-1", slot("2024-01-10", "09:00", "10:00")),
		},
	}
	notifier := &recordingNotifier{}
	svc := NewSchedulerService(repo, provider, notifier, nil)

	hostID := uuid.New()
	created, appErr := svc.CreateScheduler(context.Background(), hostID, &dto.CreateSchedulerRequest{Title: "Interview"})
	require.Nil(t, appErr)
	schedulerID := uuid.MustParse(created.ID)

	_, appErr = svc.RunSchedule(context.Background(), schedulerID, hostID, nil)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Contains(t, appErr.Message, "invalid date")
	assert.Equal(t, 0, notifier.calls)
}

func TestRunScheduleRequiresOwnership(t *testing.T) {
	repo := newFakeSchedulerRepo()
	svc := NewSchedulerService(repo, &fakeProvider{}, nil, nil)

	hostID := uuid.New()
	created, appErr := svc.CreateScheduler(context.Background(), hostID, &dto.CreateSchedulerRequest{Title: "Interview"})
	require.Nil(t, appErr)
	schedulerID := uuid.MustParse(created.ID)

	_, appErr = svc.RunSchedule(context.Background(), schedulerID, uuid.New(), nil)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestRunScheduleOverrides(t *testing.T) {
	repo := newFakeSchedulerRepo()
	provider := &fakeProvider{
		candidate: []entity.Availability{
			avail("cand-1", slot("2024-01-10", "09:00", "12:00")),
		},
		interviewer: []entity.Availability{
			avail("int-1", slot("2024-01-10", "09:00", "12:00")),
		},
	}
	svc := NewSchedulerService(repo, provider, nil, nil)

	hostID := uuid.New()
	created, appErr := svc.CreateScheduler(context.Background(), hostID, &dto.CreateSchedulerRequest{
		Title:           "Interview",
		DurationMinutes: 30,
		Timezone:        "UTC",
	})
	require.Nil(t, appErr)
	schedulerID := uuid.MustParse(created.ID)

	resp, appErr := svc.RunSchedule(context.Background(), schedulerID, hostID, &dto.RunScheduleRequest{
		DurationMinutes: 120,
	})

	require.Nil(t, appErr)
	require.True(t, resp.Success)

	iv := resp.IndividualInterviews[0]
	start, err := ParseTime(iv.StartTime)
	require.NoError(t, err)
	end, err := ParseTime(iv.EndTime)
	require.NoError(t, err)
	assert.Equal(t, 120, TimeDifference(start, end))
}

func TestGetStatsWithoutCache(t *testing.T) {
	repo := newFakeSchedulerRepo()
	provider := &fakeProvider{
		candidate: []entity.Availability{
			avail("cand-1", slot("2024-01-10", "09:00", "12:00")),
		},
		interviewer: []entity.Availability{
			avail("int-1", slot("2024-01-10", "10:00", "14:00")),
		},
	}
	svc := NewSchedulerService(repo, provider, nil, nil)

	hostID := uuid.New()
	created, appErr := svc.CreateScheduler(context.Background(), hostID, &dto.CreateSchedulerRequest{Title: "Interview"})
	require.Nil(t, appErr)
	schedulerID := uuid.MustParse(created.ID)

	stats, appErr := svc.GetStats(context.Background(), schedulerID)

	require.Nil(t, appErr)
	assert.Equal(t, 1, stats.TotalCandidateSlots)
	assert.Equal(t, 1, stats.TotalInterviewerSlots)
	assert.Equal(t, 1, stats.OverlappingDays)
	assert.Equal(t, 2.0, stats.TotalOverlappingHours)
}
