package postgres

import (
	"context"
	"insureAdvisor/domain"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{
		DB: db,
	}
}

func (r *ActivityRepository) Save(ctx context.Context, activity *domain.Activity) error {
	if err := r.DB.WithContext(ctx).Create(&activity).Error; err != nil {
		return err
	}

	return nil
}

func (r *ActivityRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Activity, error) {
	var activities []domain.Activity

	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).
		Order("date DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}

	return activities, nil
}
