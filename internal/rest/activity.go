package rest

import (
	"context"
	"insureAdvisor/business/activity"
	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ActivityService interface {
	Log(ctx context.Context, userID uint, email string, in activity.LogInput) (domain.Activity, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Activity, error)
}

type ActivityHandler struct {
	activityService ActivityService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewActivityHandler(activityService ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type ActivityLogRequest struct {
	Type        string `json:"type" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Page        string `json:"page,omitempty"`
}

func (h *ActivityHandler) LogActivity(c echo.Context) error {
	current, ok := c.Get("user").(domain.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req ActivityLogRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err, "email", current.Email)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate activity request", err, "email", current.Email)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "date must be RFC3339"})
		}
		date = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	logged, err := h.activityService.Log(ctx, current.ID, current.Email, activity.LogInput{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Page:        req.Page,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to log activity"})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(logged))
}

func (h *ActivityHandler) GetActivities(c echo.Context) error {
	current, ok := c.Get("user").(domain.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	activities, err := h.activityService.ListByUser(ctx, current.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to load activities"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(activities))
}
