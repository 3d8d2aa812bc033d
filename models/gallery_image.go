package models

import (
	"time"

	"gorm.io/gorm"
)

// GalleryImage is one photo on the gallery page.
type GalleryImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title     string `gorm:"size:150" json:"title,omitempty"`
	Category  string `gorm:"size:100;index" json:"category,omitempty"`
	ImagePath string `gorm:"column:image_path;size:255" json:"image_path"`
	SortOrder int    `gorm:"column:sort_order;default:0" json:"sort_order"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
