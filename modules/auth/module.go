package auth

import (
	"interview-scheduler/core/cache"
	"interview-scheduler/core/database"
	"interview-scheduler/core/middleware"
	"interview-scheduler/modules/auth/controller"
	"interview-scheduler/modules/auth/repository"
	"interview-scheduler/modules/auth/router"
	"interview-scheduler/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, c *cache.Cache) {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)
	rtr := router.NewAuthRouter(ctrl)

	rtr.Setup(e, mw)
}
