package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomType is one bookable category of rooms (Standard, Deluxe, ...).
//
// RoomsAvailable is the inventory ceiling the availability engine compares
// overlapping bookings against. It is a single admin-tuned counter, not a
// per-date figure, and bookings never decrement it.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName      string  `gorm:"size:100" json:"typeName"`
	Description   string  `gorm:"type:text" json:"description"`
	MaxGuests     int     `gorm:"column:max_guests;default:2" json:"max_guests"`
	TotalRooms    int     `gorm:"column:total_rooms;default:0" json:"total_rooms"`
	RoomsAvailable int    `gorm:"column:rooms_available;default:0" json:"rooms_available"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`
	IsActive      bool    `gorm:"column:is_active;default:true" json:"is_active"`

	Images datatypes.JSON `gorm:"column:images" json:"images,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
