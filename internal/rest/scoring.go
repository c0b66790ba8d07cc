package rest

import (
	"context"
	"insureAdvisor/business/scoring"
	"insureAdvisor/pkg/logger"
	"insureAdvisor/pkg/metrics"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ScoringService interface {
	CalculateProminence(ctx context.Context, email string, in scoring.ProfileInput) (scoring.ScoreResult, error)
}

type ScoringHandler struct {
	scoringService ScoringService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewScoringHandler(scoringService ScoringService) *ScoringHandler {
	return &ScoringHandler{
		scoringService: scoringService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

// ProminenceScoreRequest carries the optional profile fields. Missing or
// out-of-range fields are defaulted by the scoring pipeline rather than
// rejected here.
type ProminenceScoreRequest struct {
	Age              *int     `json:"age,omitempty"`
	AnnualIncome     *float64 `json:"annualIncome,omitempty"`
	Dependents       *int     `json:"dependents,omitempty"`
	RiskTolerance    *int     `json:"riskTolerance,omitempty"`
	CreditScore      *int     `json:"creditScore,omitempty"`
	InsuranceHistory string   `json:"insuranceHistory,omitempty"`
	ClaimHistory     string   `json:"claimHistory,omitempty"`
}

func (h *ScoringHandler) CalculateProminence(c echo.Context) error {
	timer := time.Now()
	defer func() {
		metrics.ScoreDuration.Observe(time.Since(timer).Seconds())
	}()
	metrics.ScoreTotal.Inc()

	email, ok := c.Get("email").(string)
	if !ok || email == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req ProminenceScoreRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err, "email", email)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.scoringService.CalculateProminence(ctx, email, scoring.ProfileInput{
		Age:              req.Age,
		AnnualIncome:     req.AnnualIncome,
		Dependents:       req.Dependents,
		RiskTolerance:    req.RiskTolerance,
		CreditScore:      req.CreditScore,
		InsuranceHistory: req.InsuranceHistory,
		ClaimHistory:     req.ClaimHistory,
	})
	if err != nil {
		logger.Error("Failed to calculate prominence score", err, "email", email)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to calculate prominence score"})
	}

	return c.JSON(http.StatusOK, result)
}
