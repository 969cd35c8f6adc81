package router

import (
	"interview-scheduler/core/middleware"
	"interview-scheduler/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

// AvailabilityRouter handles availability routes
type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

// NewAvailabilityRouter creates a new router
func NewAvailabilityRouter(availabilityController *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{
		AvailabilityController: availabilityController,
	}
}

// Setup registers availability routes
func (r *AvailabilityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	availabilityRoutes := privateRoutes.Group("/schedulers/:id/availability", mw.AuthMiddleware())

	availabilityRoutes.PUT("", r.AvailabilityController.SubmitAvailability)
	availabilityRoutes.GET("", r.AvailabilityController.GetSchedulerAvailability)
}
