package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	UserTypeCustomer = "customer"
	UserTypeCompany  = "company"
)

// Customer tiers, a discretization of the prominence score.
const (
	CategoryElite    = "Elite"
	CategoryValuable = "Valuable"
	CategoryStandard = "Standard"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"column:email;unique;not null" json:"email"`
	Password string `gorm:"column:password;not null" json:"-"`
	UserType string `gorm:"column:user_type;default:customer" json:"user_type"`

	FullName         string `gorm:"column:full_name" json:"full_name,omitempty"`
	CompanyName      string `gorm:"column:company_name" json:"company_name,omitempty"`
	CompanyRegNumber string `gorm:"column:company_reg_number" json:"company_reg_number,omitempty"`

	// tier-relevant profile attributes
	Age              int     `gorm:"column:age;default:30" json:"age"`
	Gender           string  `gorm:"column:gender" json:"gender,omitempty"`
	Phone            string  `gorm:"column:phone" json:"phone,omitempty"`
	Occupation       string  `gorm:"column:occupation" json:"occupation,omitempty"`
	Education        string  `gorm:"column:education" json:"education,omitempty"`
	MaritalStatus    string  `gorm:"column:marital_status" json:"marital_status,omitempty"`
	AnnualIncome     float64 `gorm:"column:annual_income;default:0" json:"annual_income"`
	Dependents       int     `gorm:"column:dependents;default:0" json:"dependents"`
	RiskTolerance    int     `gorm:"column:risk_tolerance;default:50" json:"risk_tolerance"`
	CreditScore      int     `gorm:"column:credit_score;default:300" json:"credit_score"`
	InsuranceHistory string  `gorm:"column:insurance_history;default:poor" json:"insurance_history"`
	ClaimHistory     string  `gorm:"column:claim_history;default:none" json:"claim_history"`

	// derived attributes, written by the scoring pipeline only
	ProminenceScore  int    `gorm:"column:prominence_score;default:0" json:"prominence_score"`
	CustomerCategory string `gorm:"column:customer_category;default:Standard" json:"customer_category"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
