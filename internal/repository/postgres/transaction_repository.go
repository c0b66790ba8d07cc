package postgres

import (
	"context"
	"insureAdvisor/domain"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{
		DB: db,
	}
}

func (r *TransactionRepository) Save(ctx context.Context, tx *domain.Transaction) error {
	if err := r.DB.WithContext(ctx).Create(&tx).Error; err != nil {
		return err
	}

	return nil
}

func (r *TransactionRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Transaction, error) {
	var transactions []domain.Transaction

	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (r *TransactionRepository) SumAmountByUser(ctx context.Context, userID uint) (float64, error) {
	var total float64

	err := r.DB.WithContext(ctx).Model(&domain.Transaction{}).
		Where("user_id = ? AND status = ?", userID, "completed").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
