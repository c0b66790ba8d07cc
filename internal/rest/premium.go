package rest

import (
	"errors"
	"insureAdvisor/business/premium"
	"insureAdvisor/pkg/logger"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type PremiumService interface {
	Calculate(email string, in premium.QuoteInput) (premium.Quote, error)
}

type PremiumHandler struct {
	premiumService PremiumService
	validator      *validator.Validate
}

func NewPremiumHandler(premiumService PremiumService) *PremiumHandler {
	return &PremiumHandler{
		premiumService: premiumService,
		validator:      validator.New(),
	}
}

type PremiumCalculatorRequest struct {
	PropertyValue *float64 `json:"property_value,omitempty" validate:"omitempty,gt=0"`
	PropertyAge   *int     `json:"property_age,omitempty" validate:"omitempty,gte=0"`
	TripDuration  string   `json:"trip_duration,omitempty" validate:"omitempty,oneof=short medium long extended"`
}

func (h *PremiumHandler) Calculate(c echo.Context) error {
	email, ok := c.Get("email").(string)
	if !ok || email == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req PremiumCalculatorRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err, "email", email)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate premium request", err, "email", email)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	quote, err := h.premiumService.Calculate(email, premium.QuoteInput{
		PropertyValue: req.PropertyValue,
		PropertyAge:   req.PropertyAge,
		TripDuration:  req.TripDuration,
	})
	if err != nil {
		if errors.Is(err, premium.ErrInvalidQuoteInput) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to calculate premium"})
	}

	return c.JSON(http.StatusOK, quote)
}
