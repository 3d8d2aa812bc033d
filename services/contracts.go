package services

import (
	"time"

	"hotel-site-backend/models"
)

// Store interfaces the booking subsystem depends on. The repository package
// provides the GORM implementations; tests substitute function-field mocks.

type RoomTypeStore interface {
	GetRoomType(id uint) (*models.RoomType, error)
}

type BookingStore interface {
	// FindOverlapping returns active bookings for the room type overlapping
	// [checkIn, checkOut), ordered by check-in ascending. excludeID removes
	// one booking from consideration (edit-in-place re-validation), 0 means
	// no exclusion.
	FindOverlapping(roomTypeID uint, checkIn, checkOut time.Time, excludeID uint) ([]models.Booking, error)
	CountOverlapping(roomTypeID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error)
}

type BlockedDateStore interface {
	ListForRoom(roomTypeID uint, from, to *time.Time) ([]models.BlockedDate, error)
	Upsert(bd *models.BlockedDate) error
	Remove(roomTypeID uint, date time.Time) (bool, error)
}

type SettingStore interface {
	// GetValue returns repository.ErrSettingNotFound for absent keys.
	GetValue(key string) (string, error)
}

// SettingsProvider is what policy consumers (the validator) see: a plain
// key lookup with a default, never an error.
type SettingsProvider interface {
	Get(key, def string) string
	GetInt(key string, def int) int
}
