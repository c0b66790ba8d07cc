package domain

import "time"

type Transaction struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TransactionID string    `gorm:"column:transaction_id;unique;not null" json:"transaction_id"`
	UserID        uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	PolicyID      string    `gorm:"column:policy_id;not null" json:"policy_id"`
	Amount        float64   `gorm:"column:amount;type:numeric" json:"amount"`
	PaymentMethod string    `gorm:"column:payment_method" json:"payment_method"`
	Status        string    `gorm:"column:status;default:completed" json:"status"`
	ProviderRef   string    `gorm:"column:provider_ref" json:"provider_ref"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
