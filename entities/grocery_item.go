package entities

import (
	"time"
)

type GroceryItem struct {
	ID          uint      `gorm:"primary_key;auto_increment" json:"id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	Text        string    `gorm:"not null" json:"text"`
	IsCompleted bool      `gorm:"default:false" json:"is_completed"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (GroceryItem) TableName() string {
	return "groceries"
}
