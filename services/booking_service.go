package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-site-backend/models"
	"hotel-site-backend/utils"
)

var (
	ErrBookingNotFound        = errors.New("booking_not_found")
	ErrBookingNotCheckedIn    = errors.New("not_checked_in")
	ErrBookingAlreadyDeparted = errors.New("booking_checked_out")
	ErrBookingNotActive       = errors.New("booking_not_active")
)

// BookingService persists bookings once the validator accepts them and
// applies the admin lifecycle transitions. Note the validate-then-insert
// sequence is not serialized: two concurrent requests can both pass
// validation for the last room and both insert.
type BookingService struct {
	DB        *gorm.DB
	Validator *BookingValidator
}

func NewBookingService(db *gorm.DB, validator *BookingValidator) *BookingService {
	return &BookingService{DB: db, Validator: validator}
}

// CreateBooking validates the request and, when accepted, persists a
// pending booking and sends a best-effort confirmation email. A rejected
// request returns the validation outcome with a nil booking and nil error.
func (s *BookingService) CreateBooking(data BookingData) (*models.Booking, BookingValidation, error) {
	outcome := s.Validator.ValidateBookingWithAvailability(data, 0)
	if !outcome.Valid {
		return nil, outcome, nil
	}

	// Dates already validated above.
	ci, _ := utils.ParseDate(data.CheckInDate)
	co, _ := utils.ParseDate(data.CheckOutDate)

	ref, err := utils.GenerateReferenceCode()
	if err != nil {
		return nil, outcome, fmt.Errorf("failed to generate reference code: %w", err)
	}

	booking := models.Booking{
		RoomTypeID:      data.RoomTypeID,
		ReferenceCode:   ref,
		Status:          models.BookingStatusPending,
		GuestName:       strings.TrimSpace(data.GuestName),
		GuestEmail:      strings.TrimSpace(data.GuestEmail),
		GuestPhone:      utils.NormalizePhone(data.GuestPhone),
		NumberOfGuests:  data.NumberOfGuests,
		CheckInDate:     ci,
		CheckOutDate:    co,
		Nights:          utils.NightsBetween(ci, co),
		SpecialRequests: strings.TrimSpace(data.SpecialRequests),
	}

	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, outcome, fmt.Errorf("failed to create booking: %w", err)
	}

	roomName := ""
	var room models.RoomType
	if err := s.DB.First(&room, booking.RoomTypeID).Error; err == nil {
		roomName = room.TypeName
	}
	if mailErr := utils.SendBookingConfirmationEmail(
		booking.GuestEmail,
		booking.GuestName,
		booking.ReferenceCode,
		roomName,
		utils.FormatDate(booking.CheckInDate),
		utils.FormatDate(booking.CheckOutDate),
		booking.Nights,
	); mailErr != nil {
		log.Printf("warning: confirmation email for booking %s failed: %v", booking.ReferenceCode, mailErr)
	}

	return &booking, outcome, nil
}

func (s *BookingService) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("RoomType").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	return &booking, nil
}

func (s *BookingService) GetBookingByReference(ref string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("RoomType").Where("reference_code = ?", ref).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %q: %w", ref, err)
	}
	return &booking, nil
}

// ListBookings returns bookings newest-first, optionally filtered by status.
func (s *BookingService) ListBookings(status string) ([]models.Booking, error) {
	q := s.DB.Preload("RoomType").Order("created_at DESC")
	if strings.TrimSpace(status) != "" {
		q = q.Where("status = ?", status)
	}
	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// CancelBooking cancels any booking that has not yet checked out.
func (s *BookingService) CancelBooking(id uint) error {
	booking, err := s.GetBooking(id)
	if err != nil {
		return err
	}
	if booking.Status == models.BookingStatusCheckedOut {
		return ErrBookingAlreadyDeparted
	}
	return s.DB.Model(booking).Update("status", models.BookingStatusCancelled).Error
}

// CheckInBooking transitions a pending/confirmed booking to checked-in.
func (s *BookingService) CheckInBooking(id uint) error {
	booking, err := s.GetBooking(id)
	if err != nil {
		return err
	}
	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
		return ErrBookingNotActive
	}
	now := time.Now().UTC()
	return s.DB.Model(booking).Updates(map[string]interface{}{
		"status":        models.BookingStatusCheckedIn,
		"checked_in_at": now,
	}).Error
}

// CheckOutBooking transitions a checked-in booking to checked-out.
func (s *BookingService) CheckOutBooking(id uint) error {
	booking, err := s.GetBooking(id)
	if err != nil {
		return err
	}
	if booking.Status != models.BookingStatusCheckedIn {
		return ErrBookingNotCheckedIn
	}
	now := time.Now().UTC()
	return s.DB.Model(booking).Updates(map[string]interface{}{
		"status":         models.BookingStatusCheckedOut,
		"checked_out_at": now,
	}).Error
}

// ExpireTentativeBookings marks tentative bookings older than maxAge as
// expired so they stop occupying inventory. Returns the number expired.
func (s *BookingService) ExpireTentativeBookings(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxAge)
	res := s.DB.Model(&models.Booking{}).
		Where("status = ? AND created_at < ?", models.BookingStatusTentative, cutoff).
		Update("status", models.BookingStatusExpired)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to expire tentative bookings: %w", res.Error)
	}
	return res.RowsAffected, nil
}
