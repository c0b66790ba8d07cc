package rest

import (
	"context"
	"insureAdvisor/business/transactions"
	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type TransactionsService interface {
	ProcessPayment(ctx context.Context, userID uint, email string, in transactions.PaymentInput) (domain.Transaction, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Transaction, error)
}

type TransactionsHandler struct {
	txService TransactionsService
	validator *validator.Validate
	timeout   time.Duration
}

func NewTransactionsHandler(txService TransactionsService) *TransactionsHandler {
	return &TransactionsHandler{
		txService: txService,
		validator: validator.New(),
		timeout:   10 * time.Second,
	}
}

type PaymentRequest struct {
	PolicyID      string  `json:"policy_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	ProviderRef   string  `json:"provider_ref,omitempty"`
}

func (h *TransactionsHandler) ProcessPayment(c echo.Context) error {
	current, ok := c.Get("user").(domain.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err, "email", current.Email)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate payment request", err, "email", current.Email)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	tx, err := h.txService.ProcessPayment(ctx, current.ID, current.Email, transactions.PaymentInput{
		PolicyID:      req.PolicyID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		ProviderRef:   req.ProviderRef,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to process payment"})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(tx))
}

func (h *TransactionsHandler) GetTransactions(c echo.Context) error {
	current, ok := c.Get("user").(domain.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	txs, err := h.txService.ListByUser(ctx, current.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to load transactions"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(txs))
}
