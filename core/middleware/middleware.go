package middleware

import (
	"strings"

	"interview-scheduler/core/cache"
	"interview-scheduler/core/config"
	"interview-scheduler/core/constants"
	"interview-scheduler/core/controller"
	"interview-scheduler/core/errors"
	"interview-scheduler/core/logger"
	"interview-scheduler/core/utils"

	"github.com/labstack/echo/v4"
)

// Middleware bundles the request middlewares shared by module routers
type Middleware struct {
	cache *cache.Cache
}

func NewMiddleware(c *cache.Cache) *Middleware {
	return &Middleware{cache: c}
}

// AuthMiddleware validates the bearer token and stores its claims in context
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "Missing Authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
			}

			cfg := config.Get()
			claims, appErr := utils.ParseToken(parts[1], cfg.JWT.Secret)
			if appErr != nil {
				return controller.NewErrorResponse(401, appErr.Code, appErr.Message)
			}

			if m.cache != nil && claims.ID != "" {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), claims.ID)
				if err != nil {
					logger.Warn("Middleware:AuthMiddleware:BlacklistCheckFailed", "error", err)
				} else if blacklisted {
					return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Token has been revoked")
				}
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
