package rest

import (
	"context"
	"insureAdvisor/business/dashboard"
	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type DashboardService interface {
	CustomerDashboard(ctx context.Context, user domain.User) (dashboard.CustomerDashboard, error)
	CompanyDashboard(ctx context.Context, user domain.User) (dashboard.CompanyDashboard, error)
}

type DashboardHandler struct {
	dashboardService DashboardService
	timeout          time.Duration
}

func NewDashboardHandler(dashboardService DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		timeout:          10 * time.Second,
	}
}

func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	current, ok := c.Get("user").(domain.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	data, err := h.dashboardService.CustomerDashboard(ctx, current)
	if err != nil {
		logger.Error("Failed to build dashboard", err, "email", current.Email)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to load dashboard"})
	}

	return c.JSON(http.StatusOK, data)
}

func (h *DashboardHandler) GetCompanyDashboard(c echo.Context) error {
	current, ok := c.Get("user").(domain.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	data, err := h.dashboardService.CompanyDashboard(ctx, current)
	if err != nil {
		logger.Error("Failed to build company dashboard", err, "email", current.Email)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to load company dashboard"})
	}

	return c.JSON(http.StatusOK, data)
}
