package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Recommendation is an immutable log entry of a policy suggested to a user:
// inserted on every recommendation call, never updated in place.
type Recommendation struct {
	ID              string            `gorm:"primaryKey;column:id" json:"id"`
	UserID          uint              `gorm:"column:user_id;not null;index" json:"user_id"`
	Name            string            `gorm:"column:name;not null" json:"name"`
	Description     string            `gorm:"column:description" json:"description"`
	Coverage        int64             `gorm:"column:coverage" json:"coverage"`
	Premium         int64             `gorm:"column:premium" json:"premium"`
	CoverageLimits  datatypes.JSONMap `gorm:"column:coverage_limits;type:jsonb" json:"coverage_limits"`
	Type            string            `gorm:"column:type;not null" json:"type"`
	MatchPercentage int               `gorm:"column:match_percentage;not null" json:"match_percentage"`
	CompanyName     string            `gorm:"column:company_name" json:"company_name"`
	GeneratedAt     time.Time         `gorm:"column:generated_at" json:"generated_at"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
