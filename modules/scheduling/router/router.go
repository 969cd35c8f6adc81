package router

import (
	"interview-scheduler/core/middleware"
	"interview-scheduler/modules/scheduling/controller"

	"github.com/labstack/echo/v4"
)

// SchedulingRouter handles scheduler routes
type SchedulingRouter struct {
	SchedulingController *controller.SchedulingController
}

// NewSchedulingRouter creates a new router
func NewSchedulingRouter(schedulingController *controller.SchedulingController) *SchedulingRouter {
	return &SchedulingRouter{
		SchedulingController: schedulingController,
	}
}

// Setup registers scheduler routes
func (r *SchedulingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	schedulerRoutes := privateRoutes.Group("/schedulers", mw.AuthMiddleware())

	schedulerRoutes.POST("", r.SchedulingController.CreateScheduler)
	schedulerRoutes.GET("", r.SchedulingController.GetMySchedulers)
	schedulerRoutes.GET("/:id", r.SchedulingController.GetScheduler)
	schedulerRoutes.DELETE("/:id", r.SchedulingController.DeleteScheduler)

	// Matching engine
	schedulerRoutes.POST("/:id/schedule", r.SchedulingController.RunSchedule)
	schedulerRoutes.GET("/:id/stats", r.SchedulingController.GetStats)
}
