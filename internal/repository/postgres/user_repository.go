package postgres

import (
	"context"
	"errors"
	"insureAdvisor/domain"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return err
	}

	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return user, nil
}

// UpdateProfile writes the profile attributes together with the derived
// score and tier. Account columns (email, password, user_type) stay put.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	var existingUser domain.User
	if err := r.DB.WithContext(ctx).First(&existingUser, user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.UpdatedAt = time.Now()

	if err := r.DB.WithContext(ctx).Model(&domain.User{}).Where("id = ?", user.ID).
		Select("age", "gender", "phone", "occupation", "education", "marital_status",
			"annual_income", "dependents", "risk_tolerance", "credit_score",
			"insurance_history", "claim_history",
			"prominence_score", "customer_category", "updated_at").
		Updates(user).Error; err != nil {
		return err
	}

	return nil
}

func (r *UserRepository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.User{}).
		Where("user_type = ?", domain.UserTypeCustomer).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *UserRepository) CountCustomersByCategory(ctx context.Context, category string) (int64, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.User{}).
		Where("user_type = ? AND customer_category = ?", domain.UserTypeCustomer, category).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
