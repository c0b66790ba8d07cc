package domain

import "time"

type Activity struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	UserID      uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Type        string    `gorm:"column:type;not null" json:"type"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	Date        time.Time `gorm:"column:date;not null" json:"date"`
	Page        string    `gorm:"column:page" json:"page,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}
