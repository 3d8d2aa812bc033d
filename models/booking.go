package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. Only the active ones occupy inventory.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked-in"
	BookingStatusCheckedOut = "checked-out"
	BookingStatusCancelled  = "cancelled"
	BookingStatusTentative  = "tentative"
	BookingStatusExpired    = "expired"
)

// ActiveBookingStatuses are the statuses counted towards room occupancy
// in every overlap query.
var ActiveBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomTypeID    uint   `gorm:"index;column:room_type_id" json:"room_id"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	Status        string `gorm:"column:status;size:32;index" json:"status"`

	GuestName      string `gorm:"column:guest_name;size:150" json:"guest_name"`
	GuestEmail     string `gorm:"column:guest_email;size:150" json:"guest_email"`
	GuestPhone     string `gorm:"column:guest_phone;size:50" json:"guest_phone"`
	NumberOfGuests int    `gorm:"column:number_of_guests;default:1" json:"number_of_guests"`

	// Date-only values; time of day is always midnight UTC.
	CheckInDate  time.Time `gorm:"column:check_in_date;index" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date;index" json:"check_out_date"`
	Nights       int       `gorm:"column:nights" json:"nights"`

	SpecialRequests string     `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`
	CheckedInAt     *time.Time `gorm:"column:checked_in_at" json:"checked_in_at,omitempty"`
	CheckedOutAt    *time.Time `gorm:"column:checked_out_at" json:"checked_out_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID" json:"room_type,omitempty"`
}

// IsActive reports whether the booking currently occupies inventory.
func (b *Booking) IsActive() bool {
	for _, s := range ActiveBookingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}
