package services

import (
	"fmt"
	"strings"
	"time"

	"hotel-site-backend/models"
	"hotel-site-backend/utils"
)

// Hard limits on guest bookings, independent of the configurable
// advance-booking window.
const (
	MaxStayNights       = 30
	MaxGuestsPerBooking = 20
	DefaultAdvanceDays  = 30
	minPhoneDigits      = 8
)

// Outcome types for ValidateBookingWithAvailability.
const (
	ValidationTypeFields       = "validation"
	ValidationTypeAvailability = "availability"
	ValidationTypeCapacity     = "capacity"
)

// BookingData is the guest-supplied payload for a booking request.
type BookingData struct {
	RoomTypeID      uint   `json:"room_id"`
	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestPhone      string `json:"guest_phone"`
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	NumberOfGuests  int    `json:"number_of_guests"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// FieldValidation aggregates every field error found so the frontend can
// highlight all invalid fields in one pass.
type FieldValidation struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// BookingValidation is the combined outcome of field validation plus the
// availability and capacity checks.
type BookingValidation struct {
	Valid        bool                `json:"valid"`
	Type         string              `json:"type,omitempty"`
	Errors       map[string]string   `json:"errors,omitempty"`
	Message      string              `json:"message,omitempty"`
	Conflicts    []BookingConflict   `json:"conflicts,omitempty"`
	Availability *AvailabilityResult `json:"availability,omitempty"`
}

// BookingValidator validates prospective bookings. It is a pure function of
// its inputs plus the current inventory snapshot; results are never cached
// because availability is time-sensitive.
type BookingValidator struct {
	availability *AvailabilityService
	settings     SettingsProvider

	now func() time.Time
}

func NewBookingValidator(availability *AvailabilityService, settings SettingsProvider) *BookingValidator {
	return &BookingValidator{
		availability: availability,
		settings:     settings,
		now:          time.Now,
	}
}

// ValidateBookingData runs every structural field check and aggregates the
// failures keyed by field name. No data-store query happens here except the
// advance-window setting lookup.
func (v *BookingValidator) ValidateBookingData(data BookingData) FieldValidation {
	errs := map[string]string{}

	if data.RoomTypeID == 0 {
		errs["room_id"] = "room is required"
	}
	if strings.TrimSpace(data.GuestName) == "" {
		errs["guest_name"] = "guest name is required"
	}

	email := strings.TrimSpace(data.GuestEmail)
	if email == "" {
		errs["guest_email"] = "email is required"
	} else if !utils.IsValidEmail(email) {
		errs["guest_email"] = "invalid email address"
	}

	phone := strings.TrimSpace(data.GuestPhone)
	if phone == "" {
		errs["guest_phone"] = "phone number is required"
	} else if len(utils.NormalizePhone(phone)) < minPhoneDigits {
		errs["guest_phone"] = "phone number is too short"
	}

	if data.NumberOfGuests == 0 {
		errs["number_of_guests"] = "number of guests is required"
	} else if data.NumberOfGuests < 1 || data.NumberOfGuests > MaxGuestsPerBooking {
		errs["number_of_guests"] = fmt.Sprintf("number of guests must be between 1 and %d", MaxGuestsPerBooking)
	}

	ciRaw := strings.TrimSpace(data.CheckInDate)
	coRaw := strings.TrimSpace(data.CheckOutDate)
	if ciRaw == "" {
		errs["check_in_date"] = "check-in date is required"
	}
	if coRaw == "" {
		errs["check_out_date"] = "check-out date is required"
	}

	var ci, co time.Time
	ciOK, coOK := false, false
	if ciRaw != "" {
		if t, err := utils.ParseDate(ciRaw); err != nil {
			errs["check_in_date"] = "invalid date format"
		} else {
			ci, ciOK = t, true
		}
	}
	if coRaw != "" {
		if t, err := utils.ParseDate(coRaw); err != nil {
			errs["check_out_date"] = "invalid date format"
		} else {
			co, coOK = t, true
		}
	}

	today := utils.DateOnly(v.now())
	if ciOK {
		if ci.Before(today) {
			errs["check_in_date"] = "check-in date cannot be in the past"
		} else {
			advanceDays := v.settings.GetInt(models.SettingMaxAdvanceBookingDays, DefaultAdvanceDays)
			if ci.After(today.AddDate(0, 0, advanceDays)) {
				errs["check_in_date"] = fmt.Sprintf("check-in cannot be more than %d days in advance", advanceDays)
			}
		}
	}
	if ciOK && coOK {
		if !co.After(ci) {
			errs["check_out_date"] = "check-out date must be after check-in date"
		} else if utils.NightsBetween(ci, co) > MaxStayNights {
			errs["check_out_date"] = fmt.Sprintf("stay cannot exceed %d nights", MaxStayNights)
		} else if co.After(today.AddDate(0, 0, MaxStayNights)) {
			errs["check_out_date"] = fmt.Sprintf("check-out cannot be more than %d days from today", MaxStayNights)
		}
	}

	return FieldValidation{Valid: len(errs) == 0, Errors: errs}
}

// ValidateBookingWithAvailability runs the three validation stages in
// order: structural field checks, then the availability engine, then the
// room's guest capacity. Cheaper purely-local checks always run before any
// data-store query, and capacity only once a concrete room matched.
func (v *BookingValidator) ValidateBookingWithAvailability(data BookingData, excludeBookingID uint) BookingValidation {
	fields := v.ValidateBookingData(data)
	if !fields.Valid {
		return BookingValidation{Valid: false, Type: ValidationTypeFields, Errors: fields.Errors}
	}

	result := v.availability.CheckRoomAvailability(data.RoomTypeID, data.CheckInDate, data.CheckOutDate, excludeBookingID)
	if !result.Available {
		message := result.Error
		if message == "" {
			message = "room is not available for the selected dates"
		}
		return BookingValidation{
			Valid:        false,
			Type:         ValidationTypeAvailability,
			Message:      message,
			Conflicts:    result.Conflicts,
			Availability: &result,
		}
	}

	if result.MaxGuests > 0 && data.NumberOfGuests > result.MaxGuests {
		return BookingValidation{
			Valid:        false,
			Type:         ValidationTypeCapacity,
			Message:      fmt.Sprintf("this room sleeps at most %d guests", result.MaxGuests),
			Availability: &result,
		}
	}

	return BookingValidation{Valid: true, Availability: &result}
}
