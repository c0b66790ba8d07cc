package user

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"
	"insureAdvisor/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// NotificationRepository contract interface
type NotificationRepository interface {
	SendEmail(toName, toEmail, subject, message string) (err error)
}

// PendingVerification is a signup code awaiting confirmation. Stored with a
// TTL so unconfirmed signups expire on their own.
type PendingVerification struct {
	Code     string `json:"code"`
	UserType string `json:"user_type"`
}

// VerificationRepository contract interface. Backed by an expiring store;
// entries must disappear after their TTL without any cleanup job here.
type VerificationRepository interface {
	StorePending(ctx context.Context, email string, pending PendingVerification, ttl time.Duration) error
	GetPending(ctx context.Context, email string) (PendingVerification, error)
	MarkVerified(ctx context.Context, email, userType string, ttl time.Duration) error
	GetVerified(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

// ActivityRepository contract interface
type ActivityRepository interface {
	Save(ctx context.Context, activity *domain.Activity) error
}

const (
	verificationCodeTTL = 10 * time.Minute
	verifiedWindowTTL   = 30 * time.Minute

	SubjectVerifyEmail   = "Email Verification Code"
	EmailBodyVerifyEmail = "Your verification code is %v. It expires in %v minutes."
)

var ErrEmailTaken = errors.New("email already registered")
var ErrNotVerified = errors.New("email not verified")
var ErrInvalidCredentials = errors.New("invalid email or password")

type RegisterInput struct {
	Email            string
	Password         string
	UserType         string
	FullName         string
	CompanyName      string
	CompanyRegNumber string
}

type userService struct {
	userRepo         UserRepository
	validate         *validator.Validate
	notifRepo        NotificationRepository
	verificationRepo VerificationRepository
	activityRepo     ActivityRepository
}

func NewUserService(
	userRepo UserRepository,
	validate *validator.Validate,
	notifRepo NotificationRepository,
	verificationRepo VerificationRepository,
	activityRepo ActivityRepository,
) *userService {
	return &userService{
		userRepo:         userRepo,
		validate:         validate,
		notifRepo:        notifRepo,
		verificationRepo: verificationRepo,
		activityRepo:     activityRepo,
	}
}

// SendVerification issues a 6-digit signup code, stores it with a TTL, and
// emails it. Already-registered emails are rejected before any code is cut.
func (s *userService) SendVerification(ctx context.Context, email, userType string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return errors.New("invalid email format")
	}

	if userType == "" {
		userType = domain.UserTypeCustomer
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		logger.Error("Failed to check existing account", err, "email", email)
		return fmt.Errorf("look up account: %w", err)
	}
	if err == nil && existing.ID > 0 {
		logger.Warn("Verification requested for registered email", "email", email)
		return ErrEmailTaken
	}

	if _, err := s.verificationRepo.GetPending(ctx, email); err == nil {
		logger.Warn("Verification already in progress", "email", email)
		return errors.New("verification already in progress")
	}

	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		logger.Error("Failed to generate verification code", err, "email", email)
		return errors.New("failed to generate verification code")
	}

	code := fmt.Sprintf("%06d", n.Int64())
	pending := PendingVerification{Code: code, UserType: userType}

	if err := s.verificationRepo.StorePending(ctx, email, pending, verificationCodeTTL); err != nil {
		logger.Error("Failed to store verification code", err, "email", email)
		return errors.New("failed to store verification code")
	}

	message := fmt.Sprintf(EmailBodyVerifyEmail, code, int(verificationCodeTTL.Minutes()))
	if err := s.notifRepo.SendEmail(email, email, SubjectVerifyEmail, message); err != nil {
		logger.Error("Failed to send verification email", err, "email", email)
		return errors.New("failed to send verification code")
	}

	logger.Info("Verification code sent", "email", email, "user_type", userType)
	return nil
}

// Verify checks the submitted code against the pending record. On success
// the code is consumed and replaced by a verified marker with its own TTL,
// inside which Register must complete.
func (s *userService) Verify(ctx context.Context, email, code string) (string, error) {
	pending, err := s.verificationRepo.GetPending(ctx, email)
	if err != nil {
		logger.Warn("Verification lookup failed", "email", email)
		return "", errors.New("invalid or expired verification code")
	}

	if pending.Code != code {
		logger.Warn("Verification code mismatch", "email", email)
		return "", errors.New("invalid or expired verification code")
	}

	if err := s.verificationRepo.MarkVerified(ctx, email, pending.UserType, verifiedWindowTTL); err != nil {
		logger.Error("Failed to mark email verified", err, "email", email)
		return "", errors.New("failed to verify email")
	}

	logger.Info("Email verified", "email", email)
	return pending.UserType, nil
}

// Register creates the account after email verification, seeds the profile
// defaults, and returns a signed token alongside the stored user.
func (s *userService) Register(ctx context.Context, in RegisterInput) (string, domain.User, error) {
	if err := s.validate.Var(in.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return "", domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(in.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return "", domain.User{}, errors.New("password must be at least 6 characters")
	}

	if in.UserType != domain.UserTypeCustomer && in.UserType != domain.UserTypeCompany {
		return "", domain.User{}, errors.New("user type must be customer or company")
	}

	if in.UserType == domain.UserTypeCustomer && in.FullName == "" {
		return "", domain.User{}, errors.New("full name is required for customer accounts")
	}
	if in.UserType == domain.UserTypeCompany && (in.CompanyName == "" || in.CompanyRegNumber == "") {
		return "", domain.User{}, errors.New("company name and registration number are required for company accounts")
	}

	existing, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		logger.Error("Failed to check existing account", err, "email", in.Email)
		return "", domain.User{}, fmt.Errorf("look up account: %w", err)
	}
	if err == nil && existing.ID > 0 {
		logger.Warn("Registration with taken email", "email", in.Email)
		return "", domain.User{}, ErrEmailTaken
	}

	if _, err := s.verificationRepo.GetVerified(ctx, in.Email); err != nil {
		logger.Warn("Registration without verified email", "email", in.Email)
		return "", domain.User{}, ErrNotVerified
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return "", domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		Email:            in.Email,
		Password:         passwordHash,
		UserType:         in.UserType,
		FullName:         in.FullName,
		CompanyName:      in.CompanyName,
		CompanyRegNumber: in.CompanyRegNumber,
		CustomerCategory: domain.CategoryStandard,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err, "email", in.Email)
		return "", domain.User{}, err
	}

	if err := s.verificationRepo.Delete(ctx, in.Email); err != nil {
		logger.Warn("Failed to clean up verification record", err, "email", in.Email)
	}

	token, err := utils.GenerateJWT(newUser.Email, newUser.UserType)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	newUser.Password = ""
	logger.Info("User registered", "email", newUser.Email, "user_type", newUser.UserType)
	return token, newUser, nil
}

// Login authenticates by email, password, and account type, logs the login
// activity, and returns a fresh token.
func (s *userService) Login(ctx context.Context, email, password, userType string) (string, domain.User, error) {
	if userType == "" {
		userType = domain.UserTypeCustomer
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Warn("Login for unknown email", "email", email)
			return "", domain.User{}, ErrInvalidCredentials
		}
		logger.Error("Failed to load user for login", err, "email", email)
		return "", domain.User{}, fmt.Errorf("look up account: %w", err)
	}

	if user.UserType != userType {
		logger.Warn("Login with mismatched user type", "email", email, "requested", userType)
		return "", domain.User{}, ErrInvalidCredentials
	}

	if ok := utils.CheckPassword(password, user.Password); !ok {
		logger.Warn("Login with incorrect password", "email", email)
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.Email, user.UserType)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	activity := domain.Activity{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Type:   "login",
		Title:  "Account login",
		Date:   time.Now(),
	}
	if err := s.activityRepo.Save(ctx, &activity); err != nil {
		logger.Warn("Failed to record login activity", err, "email", email)
	}

	user.Password = ""
	return token, user, nil
}
