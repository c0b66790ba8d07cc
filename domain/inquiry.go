package domain

import "time"

type Inquiry struct {
	ID              string    `gorm:"primaryKey;column:id" json:"id"`
	UserID          uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	ContactName     string    `gorm:"column:contact_name;not null" json:"contact_name"`
	Phone           string    `gorm:"column:phone;not null" json:"phone"`
	Email           string    `gorm:"column:email;not null" json:"email"`
	Address         string    `gorm:"column:address" json:"address,omitempty"`
	AdditionalNotes string    `gorm:"column:additional_notes" json:"additional_notes,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}
