package models

import "time"

// Setting keys read by the booking subsystem. The rest of the table holds
// hotel-profile content for the public pages.
const (
	SettingMaxAdvanceBookingDays = "max_advance_booking_days"
	SettingBookingBufferMinutes  = "booking_buffer_minutes"
)

// SiteSetting is one key/value row of site configuration.
type SiteSetting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SettingKey   string `gorm:"column:setting_key;size:100;uniqueIndex" json:"key"`
	SettingValue string `gorm:"column:setting_value;type:text" json:"value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
