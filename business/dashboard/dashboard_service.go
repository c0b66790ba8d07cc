package dashboard

import (
	"context"
	"time"

	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"
)

// PolicyRepository contract interface
type PolicyRepository interface {
	FindByOwner(ctx context.Context, ownerUserID uint) ([]domain.Policy, error)
	CountByOwner(ctx context.Context, ownerUserID uint, status string) (int64, error)
}

// UserRepository contract interface
type UserRepository interface {
	CountCustomers(ctx context.Context) (int64, error)
	CountCustomersByCategory(ctx context.Context, category string) (int64, error)
}

// TransactionRepository contract interface
type TransactionRepository interface {
	SumAmountByUser(ctx context.Context, userID uint) (float64, error)
}

type CustomerDashboard struct {
	User             UserSummary     `json:"user"`
	Policies         []domain.Policy `json:"policies"`
	ProminenceScore  int             `json:"prominence_score"`
	CustomerCategory string          `json:"customer_category"`
}

type UserSummary struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type TierCounts struct {
	Elite    int64 `json:"elite"`
	Valuable int64 `json:"valuable"`
	Standard int64 `json:"standard"`
}

type CompanyDashboard struct {
	CompanyName      string     `json:"company_name"`
	CompanyRegNumber string     `json:"company_reg_number"`
	Email            string     `json:"email"`
	ActivePolicies   int64      `json:"active_policies"`
	TotalPolicies    int64      `json:"total_policies"`
	CustomerCount    int64      `json:"customer_count"`
	CustomerTiers    TierCounts `json:"customer_tiers"`
	TotalRevenue     float64    `json:"total_revenue"`
	ClaimsRatio      float64    `json:"claims_ratio"`
	LastUpdated      time.Time  `json:"last_updated"`
}

// claimsRatioPlaceholder stands in until claims ingestion lands.
const claimsRatioPlaceholder = 0.05

type DashboardService struct {
	policyRepo PolicyRepository
	userRepo   UserRepository
	txRepo     TransactionRepository
}

func NewDashboardService(policyRepo PolicyRepository, userRepo UserRepository, txRepo TransactionRepository) *DashboardService {
	return &DashboardService{
		policyRepo: policyRepo,
		userRepo:   userRepo,
		txRepo:     txRepo,
	}
}

func (s *DashboardService) CustomerDashboard(ctx context.Context, user domain.User) (CustomerDashboard, error) {
	policies, err := s.policyRepo.FindByOwner(ctx, user.ID)
	if err != nil {
		logger.Error("Failed to load policies for dashboard", err, "email", user.Email)
		return CustomerDashboard{}, err
	}

	return CustomerDashboard{
		User: UserSummary{
			FullName: user.FullName,
			Email:    user.Email,
		},
		Policies:         policies,
		ProminenceScore:  user.ProminenceScore,
		CustomerCategory: user.CustomerCategory,
	}, nil
}

func (s *DashboardService) CompanyDashboard(ctx context.Context, user domain.User) (CompanyDashboard, error) {
	active, err := s.policyRepo.CountByOwner(ctx, user.ID, "active")
	if err != nil {
		logger.Error("Failed to count active policies", err, "email", user.Email)
		return CompanyDashboard{}, err
	}

	total, err := s.policyRepo.CountByOwner(ctx, user.ID, "")
	if err != nil {
		logger.Error("Failed to count policies", err, "email", user.Email)
		return CompanyDashboard{}, err
	}

	customers, err := s.userRepo.CountCustomers(ctx)
	if err != nil {
		logger.Error("Failed to count customers", err, "email", user.Email)
		return CompanyDashboard{}, err
	}

	tiers := TierCounts{}
	if tiers.Elite, err = s.userRepo.CountCustomersByCategory(ctx, domain.CategoryElite); err != nil {
		return CompanyDashboard{}, err
	}
	if tiers.Valuable, err = s.userRepo.CountCustomersByCategory(ctx, domain.CategoryValuable); err != nil {
		return CompanyDashboard{}, err
	}
	if tiers.Standard, err = s.userRepo.CountCustomersByCategory(ctx, domain.CategoryStandard); err != nil {
		return CompanyDashboard{}, err
	}

	revenue, err := s.txRepo.SumAmountByUser(ctx, user.ID)
	if err != nil {
		logger.Error("Failed to sum revenue", err, "email", user.Email)
		return CompanyDashboard{}, err
	}

	return CompanyDashboard{
		CompanyName:      user.CompanyName,
		CompanyRegNumber: user.CompanyRegNumber,
		Email:            user.Email,
		ActivePolicies:   active,
		TotalPolicies:    total,
		CustomerCount:    customers,
		CustomerTiers:    tiers,
		TotalRevenue:     revenue,
		ClaimsRatio:      claimsRatioPlaceholder,
		LastUpdated:      time.Now().UTC(),
	}, nil
}
