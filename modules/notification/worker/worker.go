package worker

import (
	"context"
	"encoding/json"

	"interview-scheduler/core/logger"
	"interview-scheduler/modules/notification/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeNotificationDeliver = "notification:deliver"

type DeliverPayload struct {
	NotificationID uuid.UUID `json:"notification_id"`
}

func NewDeliverTask(notificationID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(DeliverPayload{NotificationID: notificationID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotificationDeliver, payload, asynq.MaxRetry(3)), nil
}

// DeliverHandler processes queued notification deliveries. Delivery here
// means flagging the row so clients polling the unread count pick it up;
// an email or push integration would hang off the same hook.
type DeliverHandler struct {
	repo *repository.NotificationRepository
}

func NewDeliverHandler(repo *repository.NotificationRepository) *DeliverHandler {
	return &DeliverHandler{repo: repo}
}

func (h *DeliverHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload DeliverPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("NotificationWorker:Deliver:BadPayload", err)
		return err
	}

	if err := h.repo.MarkDelivered(ctx, payload.NotificationID); err != nil {
		return err
	}

	logger.Info("NotificationWorker:Deliver:Success", "notification_id", payload.NotificationID)
	return nil
}
