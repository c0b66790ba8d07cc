package rest

import (
	"context"
	"insureAdvisor/business/contact"
	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ContactService interface {
	Submit(ctx context.Context, userID uint, email string, in contact.InquiryInput) (domain.Inquiry, error)
}

type ContactHandler struct {
	contactService ContactService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewContactHandler(contactService ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type ContactRequest struct {
	ContactName     string `json:"contact_name" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Address         string `json:"address,omitempty"`
	AdditionalNotes string `json:"additional_notes,omitempty"`
}

func (h *ContactHandler) SubmitInquiry(c echo.Context) error {
	current, ok := c.Get("user").(domain.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err, "email", current.Email)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate contact request", err, "email", current.Email)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	inquiry, err := h.contactService.Submit(ctx, current.ID, current.Email, contact.InquiryInput{
		ContactName:     req.ContactName,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		AdditionalNotes: req.AdditionalNotes,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to submit inquiry"})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(inquiry))
}
