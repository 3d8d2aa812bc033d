package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-site-backend/models"
)

type BookingRepo struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// overlapQuery selects active bookings for a room type whose stay overlaps
// [checkIn, checkOut). Half-open semantics: a stay ending exactly on checkIn
// (or starting exactly on checkOut) does not overlap, so back-to-back
// checkout/check-in on the same day is allowed.
func (r *BookingRepo) overlapQuery(roomTypeID uint, checkIn, checkOut time.Time, excludeID uint) *gorm.DB {
	q := r.db.Model(&models.Booking{}).
		Where("room_type_id = ?", roomTypeID).
		Where("status IN ?", models.ActiveBookingStatuses).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

// FindOverlapping returns the overlapping active bookings ordered by
// check-in date ascending.
func (r *BookingRepo) FindOverlapping(roomTypeID uint, checkIn, checkOut time.Time, excludeID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.overlapQuery(roomTypeID, checkIn, checkOut, excludeID).
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping bookings: %w", err)
	}
	return bookings, nil
}

// CountOverlapping counts overlapping active bookings without loading them.
func (r *BookingRepo) CountOverlapping(roomTypeID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	var count int64
	if err := r.overlapQuery(roomTypeID, checkIn, checkOut, excludeID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}
	return count, nil
}
