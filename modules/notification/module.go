package notification

import (
	"interview-scheduler/core/database"
	"interview-scheduler/core/middleware"
	"interview-scheduler/modules/notification/controller"
	"interview-scheduler/modules/notification/repository"
	"interview-scheduler/modules/notification/router"
	"interview-scheduler/modules/notification/service"
	"interview-scheduler/modules/notification/worker"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init initializes the notification module and registers routes. The
// returned service is handed to the scheduling module as its notifier,
// and the deliver handler is registered on the caller's asynq mux.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, client *asynq.Client, mux *asynq.ServeMux) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo, client)
	ctrl := controller.NewNotificationController(svc)
	rtr := router.NewNotificationRouter(ctrl)

	rtr.Setup(e, mw)

	if mux != nil {
		mux.Handle(worker.TypeNotificationDeliver, worker.NewDeliverHandler(repo))
	}

	return svc
}
