package controller

import (
	"interview-scheduler/core/constants"
	"interview-scheduler/core/controller"
	"interview-scheduler/core/errors"
	"interview-scheduler/core/utils"
	"interview-scheduler/modules/availability/dto"
	"interview-scheduler/modules/availability/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AvailabilityController handles availability HTTP requests
type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

// NewAvailabilityController creates a new controller
func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

func (c *AvailabilityController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}

// SubmitAvailability handles PUT /schedulers/:id/availability
// @Summary Submit availability
// @Description Stores the caller's offered time windows for a scheduler, replacing any prior submission
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Scheduler ID"
// @Param request body dto.SubmitAvailabilityRequest true "Offered time windows"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /private/schedulers/{id}/availability [put]
func (c *AvailabilityController) SubmitAvailability(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	schedulerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid scheduler ID")
	}

	var req dto.SubmitAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if len(req.TimeSlots) == 0 {
		return c.BadRequest(errors.ErrInvalidRequestData, "At least one time slot is required")
	}

	result, appErr := c.AvailabilityService.SubmitAvailability(ctx.Request().Context(), schedulerID, userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Availability submitted successfully")
}

// GetSchedulerAvailability handles GET /schedulers/:id/availability
// @Summary List availability
// @Description Lists every current submission for a scheduler
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param id path string true "Scheduler ID"
// @Success 200 {array} dto.AvailabilityResponse
// @Failure 400 {object} errors.AppError
// @Router /private/schedulers/{id}/availability [get]
func (c *AvailabilityController) GetSchedulerAvailability(ctx echo.Context) error {
	schedulerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid scheduler ID")
	}

	result, appErr := c.AvailabilityService.GetSchedulerAvailability(ctx.Request().Context(), schedulerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
