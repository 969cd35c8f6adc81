package service

import (
	"context"
	"fmt"
	"time"

	coreEntity "interview-scheduler/core/entity"
	"interview-scheduler/core/logger"
	"interview-scheduler/core/params"
	"interview-scheduler/modules/notification/entity"
	"interview-scheduler/modules/notification/repository"
	"interview-scheduler/modules/notification/worker"
	schedentity "interview-scheduler/modules/scheduling/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type NotificationService struct {
	repo   *repository.NotificationRepository
	client *asynq.Client
}

func NewNotificationService(repo *repository.NotificationRepository, client *asynq.Client) *NotificationService {
	return &NotificationService{repo: repo, client: client}
}

// NotifyScheduleResult records the outcome of a schedule run for everyone
// involved and queues delivery. A confirmed run notifies host and candidate
// with the booked time; a failed run asks for more availability.
func (s *NotificationService) NotifyScheduleResult(ctx context.Context, scheduler *schedentity.Scheduler, response *schedentity.ScheduleResponse) error {
	recipients := []uuid.UUID{scheduler.HostID}
	if scheduler.CandidateID != nil {
		recipients = append(recipients, *scheduler.CandidateID)
	}

	title, message, notifType := composeScheduleNotice(scheduler, response)

	data := entity.JSONB{
		"scheduler_id": scheduler.ID.String(),
		"success":      response.Success,
	}
	if response.ScheduledTime != "" {
		data["scheduled_time"] = response.ScheduledTime
	}

	for _, userID := range recipients {
		notif := &entity.Notification{
			UserID:  userID,
			Title:   title,
			Message: message,
			Type:    notifType,
			Data:    data,
			IsRead:  false,
			BaseEntity: coreEntity.BaseEntity{
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
		}

		if err := s.repo.Create(ctx, notif); err != nil {
			return err
		}

		s.enqueueDelivery(notif.ID)
	}

	return nil
}

func (s *NotificationService) enqueueDelivery(notificationID uuid.UUID) {
	if s.client == nil {
		return
	}

	task, err := worker.NewDeliverTask(notificationID)
	if err != nil {
		logger.Error("NotificationService:EnqueueDelivery:BuildTask", err)
		return
	}

	if _, err := s.client.Enqueue(task); err != nil {
		logger.Warn("NotificationService:EnqueueDelivery:Failed", "notification_id", notificationID, "error", err)
	}
}

func composeScheduleNotice(scheduler *schedentity.Scheduler, response *schedentity.ScheduleResponse) (title, message, notifType string) {
	if response.Success {
		title = fmt.Sprintf("Interview confirmed: %s", scheduler.Title)
		return title, response.Message, entity.TypeScheduleConfirmed
	}

	title = fmt.Sprintf("Scheduling needs attention: %s", scheduler.Title)
	return title, response.Message, entity.TypeScheduleFailed
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	return s.repo.GetByUserID(ctx, userID, queryParams)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) error {
	return s.repo.MarkAsRead(ctx, userID, ids)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}
