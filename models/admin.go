package models

import (
	"time"

	"gorm.io/gorm"
)

type Admin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:150" json:"fullName"`
	Username string `gorm:"size:150;uniqueIndex" json:"username"`
	Password string `gorm:"size:255" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
