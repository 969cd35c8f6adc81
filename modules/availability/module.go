package availability

import (
	"interview-scheduler/core/database"
	"interview-scheduler/core/middleware"
	"interview-scheduler/modules/availability/controller"
	"interview-scheduler/modules/availability/repository"
	"interview-scheduler/modules/availability/router"
	"interview-scheduler/modules/availability/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the availability module and registers routes. The
// repository is returned so the scheduling module can consume it as its
// availability provider.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *repository.AvailabilityRepository {
	repo := repository.NewAvailabilityRepository(db)
	svc := service.NewAvailabilityService(repo)
	ctrl := controller.NewAvailabilityController(svc)
	rtr := router.NewAvailabilityRouter(ctrl)

	rtr.Setup(e, mw)
	return repo
}
