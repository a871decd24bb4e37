package entities

import (
	"time"
)

type Subscription struct {
	ID         uint      `gorm:"primary_key;auto_increment" json:"id"`
	UserID     int64     `gorm:"index;not null" json:"user_id"`
	Label      string    `gorm:"not null" json:"label"`
	Amount     float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	Date       time.Time `gorm:"type:date;not null" json:"date"`
	Recurrence string    `gorm:"not null" json:"recurrence"` // "monthly", "yearly", "weekly"
	ImageURL   *string   `json:"image_url,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
