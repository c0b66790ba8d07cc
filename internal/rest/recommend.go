package rest

import (
	"context"
	"insureAdvisor/business/recommend"
	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"
	"insureAdvisor/pkg/metrics"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type RecommendService interface {
	Recommend(ctx context.Context, user domain.User) (recommend.Result, error)
	History(ctx context.Context, userID uint) ([]domain.Recommendation, error)
	Chat(ctx context.Context, user domain.User, message string) (string, error)
}

type ChatRequest struct {
	Message string `json:"message"`
}

type RecommendHandler struct {
	recommendService RecommendService
	timeout          time.Duration
}

func NewRecommendHandler(recommendService RecommendService) *RecommendHandler {
	return &RecommendHandler{
		recommendService: recommendService,
		timeout:          10 * time.Second,
	}
}

func (h *RecommendHandler) GetRecommendations(c echo.Context) error {
	timer := time.Now()
	defer func() {
		metrics.RecommendDuration.Observe(time.Since(timer).Seconds())
	}()
	metrics.RecommendTotal.Inc()

	current, ok := c.Get("user").(domain.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.recommendService.Recommend(ctx, current)
	if err != nil {
		logger.Error("Failed to generate recommendations", err, "email", current.Email)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to generate recommendations"})
	}

	return c.JSON(http.StatusOK, result)
}

func (h *RecommendHandler) GetHistory(c echo.Context) error {
	current, ok := c.Get("user").(domain.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.recommendService.History(ctx, current.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to load recommendation history"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// Chatbot answers policy questions for customer accounts from their saved
// recommendations.
func (h *RecommendHandler) Chatbot(c echo.Context) error {
	current, ok := c.Get("user").(domain.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	if current.UserType != domain.UserTypeCustomer {
		return c.JSON(http.StatusForbidden, ResponseError{Message: "Only customers can use chatbot"})
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	reply, err := h.recommendService.Chat(ctx, current, req.Message)
	if err != nil {
		logger.Error("Chatbot failed", err, "email", current.Email)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "chatbot failed"})
	}

	return c.JSON(http.StatusOK, map[string]string{"response": reply})
}
