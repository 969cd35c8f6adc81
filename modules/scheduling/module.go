package scheduling

import (
	"interview-scheduler/core/cache"
	"interview-scheduler/core/database"
	"interview-scheduler/core/middleware"
	"interview-scheduler/modules/scheduling/controller"
	"interview-scheduler/modules/scheduling/repository"
	"interview-scheduler/modules/scheduling/router"
	"interview-scheduler/modules/scheduling/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the scheduling module and registers routes. The
// availability provider and notifier come from their own modules.
func Init(
	e *echo.Echo,
	db database.IDatabase,
	mw *middleware.Middleware,
	availability service.AvailabilityProvider,
	notifier service.ScheduleNotifier,
	c *cache.Cache,
) {
	repo := repository.NewSchedulerRepository(db)
	svc := service.NewSchedulerService(repo, availability, notifier, c)
	ctrl := controller.NewSchedulingController(svc)
	rtr := router.NewSchedulingRouter(ctrl)

	rtr.Setup(e, mw)
}
