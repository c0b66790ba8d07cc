package postgres

import (
	"context"
	"insureAdvisor/domain"

	"gorm.io/gorm"
)

type PolicyRepository struct {
	DB *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) *PolicyRepository {
	return &PolicyRepository{
		DB: db,
	}
}

func (r *PolicyRepository) Save(ctx context.Context, policy *domain.Policy) error {
	if err := r.DB.WithContext(ctx).Create(&policy).Error; err != nil {
		return err
	}

	return nil
}

func (r *PolicyRepository) FindActive(ctx context.Context) ([]domain.Policy, error) {
	var policies []domain.Policy

	err := r.DB.WithContext(ctx).Where("status = ?", "active").Find(&policies).Error
	if err != nil {
		return nil, err
	}

	return policies, nil
}

func (r *PolicyRepository) FindByOwner(ctx context.Context, ownerUserID uint) ([]domain.Policy, error) {
	var policies []domain.Policy

	err := r.DB.WithContext(ctx).Where("owner_user_id = ?", ownerUserID).Find(&policies).Error
	if err != nil {
		return nil, err
	}

	return policies, nil
}

// CountByOwner counts the owner's policies, restricted to a status when one
// is given.
func (r *PolicyRepository) CountByOwner(ctx context.Context, ownerUserID uint, status string) (int64, error) {
	var count int64

	query := r.DB.WithContext(ctx).Model(&domain.Policy{}).Where("owner_user_id = ?", ownerUserID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *PolicyRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.Policy{}).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
