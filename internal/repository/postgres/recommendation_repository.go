package postgres

import (
	"context"
	"insureAdvisor/domain"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{
		DB: db,
	}
}

func (r *RecommendationRepository) Save(ctx context.Context, rec *domain.Recommendation) error {
	if err := r.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return err
	}

	return nil
}

func (r *RecommendationRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Recommendation, error) {
	var recommendations []domain.Recommendation

	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&recommendations).Error
	if err != nil {
		return nil, err
	}

	return recommendations, nil
}
