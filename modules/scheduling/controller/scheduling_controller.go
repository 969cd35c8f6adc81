package controller

import (
	"interview-scheduler/core/constants"
	"interview-scheduler/core/controller"
	"interview-scheduler/core/errors"
	"interview-scheduler/core/utils"
	"interview-scheduler/modules/scheduling/dto"
	"interview-scheduler/modules/scheduling/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SchedulingController handles scheduler HTTP requests
type SchedulingController struct {
	controller.BaseController
	SchedulerService service.SchedulerServiceInterface
}

// NewSchedulingController creates a new controller
func NewSchedulingController(svc service.SchedulerServiceInterface) *SchedulingController {
	return &SchedulingController{
		BaseController:   controller.NewBaseController(),
		SchedulerService: svc,
	}
}

// getUserIDFromContext extracts user ID from JWT context
func (c *SchedulingController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// CreateScheduler handles POST /schedulers
// @Summary Create interview scheduler
// @Description Creates a scheduler coordinating one interview between a candidate and interviewers
// @Tags Scheduling
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSchedulerRequest true "Scheduler details"
// @Success 200 {object} dto.SchedulerResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /private/schedulers [post]
func (c *SchedulingController) CreateScheduler(ctx echo.Context) error {
	hostID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateSchedulerRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if req.Title == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "Title is required")
	}

	result, appErr := c.SchedulerService.CreateScheduler(ctx.Request().Context(), hostID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Scheduler created successfully")
}

// GetScheduler handles GET /schedulers/:id
// @Summary Get scheduler
// @Description Returns one scheduler by ID
// @Tags Scheduling
// @Security BearerAuth
// @Produce json
// @Param id path string true "Scheduler ID"
// @Success 200 {object} dto.SchedulerResponse
// @Failure 404 {object} errors.AppError
// @Router /private/schedulers/{id} [get]
func (c *SchedulingController) GetScheduler(ctx echo.Context) error {
	schedulerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid scheduler ID")
	}

	result, appErr := c.SchedulerService.GetSchedulerByID(ctx.Request().Context(), schedulerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetMySchedulers handles GET /schedulers
// @Summary List schedulers
// @Description Returns the authenticated host's schedulers
// @Tags Scheduling
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.SchedulerResponse
// @Failure 401 {object} errors.AppError
// @Router /private/schedulers [get]
func (c *SchedulingController) GetMySchedulers(ctx echo.Context) error {
	hostID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.SchedulerService.GetMySchedulers(ctx.Request().Context(), hostID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// DeleteScheduler handles DELETE /schedulers/:id
// @Summary Delete scheduler
// @Description Deletes a scheduler owned by the authenticated host
// @Tags Scheduling
// @Security BearerAuth
// @Param id path string true "Scheduler ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.AppError
// @Router /private/schedulers/{id} [delete]
func (c *SchedulingController) DeleteScheduler(ctx echo.Context) error {
	hostID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	schedulerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid scheduler ID")
	}

	appErr := c.SchedulerService.DeleteScheduler(ctx.Request().Context(), schedulerID, hostID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Scheduler deleted successfully")
}

// RunSchedule handles POST /schedulers/:id/schedule
// @Summary Run the matching engine
// @Description Reconciles submitted availability into concrete interview slots; an infeasible run returns success=false, not an error
// @Tags Scheduling
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Scheduler ID"
// @Param request body dto.RunScheduleRequest false "Per-run overrides"
// @Success 200 {object} entity.ScheduleResponse
// @Failure 400 {object} errors.AppError
// @Router /private/schedulers/{id}/schedule [post]
func (c *SchedulingController) RunSchedule(ctx echo.Context) error {
	hostID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	schedulerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid scheduler ID")
	}

	var req dto.RunScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		req = dto.RunScheduleRequest{}
	}

	result, appErr := c.SchedulerService.RunSchedule(ctx.Request().Context(), schedulerID, hostID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Schedule run completed")
}

// GetStats handles GET /schedulers/:id/stats
// @Summary Scheduling stats
// @Description Raw overlap capacity between candidate and interviewer availability
// @Tags Scheduling
// @Security BearerAuth
// @Produce json
// @Param id path string true "Scheduler ID"
// @Success 200 {object} entity.SchedulingStats
// @Failure 404 {object} errors.AppError
// @Router /private/schedulers/{id}/stats [get]
func (c *SchedulingController) GetStats(ctx echo.Context) error {
	schedulerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid scheduler ID")
	}

	result, appErr := c.SchedulerService.GetStats(ctx.Request().Context(), schedulerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
