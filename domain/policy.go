package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Policy types as they appear in the catalog dataset.
const (
	PolicyTypeBasic   = "basic"
	PolicyTypePremium = "premium"
	PolicyTypeElite   = "elite"
	PolicyTypeHome    = "home"
	PolicyTypeTravel  = "travel"
)

// Policy is a catalog entry describing an insurance offering. Rows are
// read-only from the recommendation pipeline's perspective; they are seeded
// from the catalog dataset or registered by company accounts.
type Policy struct {
	ID             uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string            `gorm:"column:name;not null" json:"name"`
	Description    string            `gorm:"column:description" json:"description,omitempty"`
	Type           string            `gorm:"column:type;not null" json:"type"`
	Premium        float64           `gorm:"column:premium;type:numeric" json:"premium"`
	CoverageLimits datatypes.JSONMap `gorm:"column:coverage_limits;type:jsonb" json:"coverage_limits"`
	CompanyName    string            `gorm:"column:company_name" json:"company_name"`
	OwnerUserID    uint              `gorm:"column:owner_user_id;default:0" json:"owner_user_id,omitempty"`
	Status         string            `gorm:"column:status;default:active" json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}

func (Policy) TableName() string {
	return "policies"
}
