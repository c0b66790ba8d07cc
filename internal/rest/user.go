package rest

import (
	"context"
	"errors"
	"insureAdvisor/business/user"
	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	SendVerification(ctx context.Context, email, userType string) error
	Verify(ctx context.Context, email, code string) (string, error)
	Register(ctx context.Context, in user.RegisterInput) (string, domain.User, error)
	Login(ctx context.Context, email, password, userType string) (string, domain.User, error)
}

type UserHandler struct {
	userService UserService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type SendVerificationRequest struct {
	Email    string `json:"email" validate:"required,email"`
	UserType string `json:"user_type" validate:"omitempty,oneof=customer company"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

type RegisterRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
	UserType         string `json:"user_type" validate:"omitempty,oneof=customer company"`
	FullName         string `json:"full_name,omitempty"`
	CompanyName      string `json:"company_name,omitempty"`
	CompanyRegNumber string `json:"company_reg_number,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"user_type" validate:"omitempty,oneof=customer company"`
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

func (h *UserHandler) SendVerification(c echo.Context) error {
	var req SendVerificationRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate verification request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.userService.SendVerification(ctx, req.Email, req.UserType); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Verification code sent. Please check your email.",
	})
}

func (h *UserHandler) VerifyEmail(c echo.Context) error {
	var req VerifyEmailRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate verify request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	userType, err := h.userService.Verify(ctx, req.Email, req.Code)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Email verified successfully.",
		"user_type": userType,
	})
}

func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate user register", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if req.UserType == "" {
		req.UserType = domain.UserTypeCustomer
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, newUser, err := h.userService.Register(ctx, user.RegisterInput{
		Email:            req.Email,
		Password:         req.Password,
		UserType:         req.UserType,
		FullName:         req.FullName,
		CompanyName:      req.CompanyName,
		CompanyRegNumber: req.CompanyRegNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		case errors.Is(err, user.ErrNotVerified):
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		default:
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Registration successful.",
		"token":   token,
		"user":    newUser,
	})
}

func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate user login", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, loggedIn, err := h.userService.Login(ctx, req.Email, req.Password, req.UserType)
	if err != nil {
		logger.Error("Failed to login with user", err)
		if errors.Is(err, user.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to log in"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    loggedIn,
	})
}

// CurrentUser returns the profile of the authenticated account. The auth
// middleware already loaded it, so there is no service call here.
func (h *UserHandler) CurrentUser(c echo.Context) error {
	current, ok := c.Get("user").(domain.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	current.Password = ""

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": current,
	})
}
