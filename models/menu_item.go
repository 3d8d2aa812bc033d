package models

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem is one dish on the restaurant page.
type MenuItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:150" json:"name"`
	Category    string  `gorm:"size:100;index" json:"category"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	Price       float64 `json:"price"`
	IsAvailable bool    `gorm:"column:is_available;default:true" json:"is_available"`
	SortOrder   int     `gorm:"column:sort_order;default:0" json:"sort_order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
