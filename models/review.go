package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a guest review shown on the public site once approved.
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GuestName  string `gorm:"size:150" json:"guest_name"`
	Rating     int    `gorm:"default:5" json:"rating"`
	Comment    string `gorm:"type:text" json:"comment"`
	IsApproved bool   `gorm:"column:is_approved;default:false;index" json:"is_approved"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
