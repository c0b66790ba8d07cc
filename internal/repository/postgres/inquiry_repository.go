package postgres

import (
	"context"
	"insureAdvisor/domain"

	"gorm.io/gorm"
)

type InquiryRepository struct {
	DB *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{
		DB: db,
	}
}

func (r *InquiryRepository) Save(ctx context.Context, inquiry *domain.Inquiry) error {
	if err := r.DB.WithContext(ctx).Create(&inquiry).Error; err != nil {
		return err
	}

	return nil
}
