package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hotel-site-backend/models"
)

// mapSettings is a fixed in-memory SettingsProvider.
type mapSettings map[string]string

func (m mapSettings) Get(key, def string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

func (m mapSettings) GetInt(key string, def int) int {
	if n, err := strconv.Atoi(m.Get(key, "")); err == nil {
		return n
	}
	return def
}

func newTestValidator(stores *memStores, settings mapSettings) *BookingValidator {
	v := NewBookingValidator(newTestAvailability(stores), settings)
	v.now = func() time.Time { return testToday }
	return v
}

func validBookingData() BookingData {
	return BookingData{
		RoomTypeID:     1,
		GuestName:      "Alice Example",
		GuestEmail:     "alice@example.com",
		GuestPhone:     "+66 81 234 5678",
		CheckInDate:    "2026-01-10",
		CheckOutDate:   "2026-01-12",
		NumberOfGuests: 2,
	}
}

func TestValidateBookingData_AggregatesAllFieldErrors(t *testing.T) {
	v := newTestValidator(&memStores{room: standardRoom(1)}, mapSettings{})

	fields := v.ValidateBookingData(BookingData{})
	require.False(t, fields.Valid)
	for _, key := range []string{
		"room_id", "guest_name", "guest_email", "guest_phone",
		"check_in_date", "check_out_date", "number_of_guests",
	} {
		require.Contains(t, fields.Errors, key)
	}
	require.Len(t, fields.Errors, 7)
}

func TestValidateBookingData_FieldFormats(t *testing.T) {
	v := newTestValidator(&memStores{room: standardRoom(1)}, mapSettings{})

	cases := []struct {
		name    string
		mutate  func(*BookingData)
		field   string
		message string
	}{
		{"bad email", func(d *BookingData) { d.GuestEmail = "not-an-email" }, "guest_email", "invalid email address"},
		{"short phone", func(d *BookingData) { d.GuestPhone = "12345" }, "guest_phone", "phone number is too short"},
		{"zero guests handled as required", func(d *BookingData) { d.NumberOfGuests = 0 }, "number_of_guests", "number of guests is required"},
		{"too many guests", func(d *BookingData) { d.NumberOfGuests = 21 }, "number_of_guests", "number of guests must be between 1 and 20"},
		{"garbage check-in", func(d *BookingData) { d.CheckInDate = "10/01/2026" }, "check_in_date", "invalid date format"},
		{"check-in in the past", func(d *BookingData) { d.CheckInDate = "2025-12-30" }, "check_in_date", "check-in date cannot be in the past"},
		{"check-out before check-in", func(d *BookingData) { d.CheckOutDate = "2026-01-10" }, "check_out_date", "check-out date must be after check-in date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := validBookingData()
			tc.mutate(&data)
			fields := v.ValidateBookingData(data)
			require.False(t, fields.Valid)
			require.Equal(t, tc.message, fields.Errors[tc.field])
		})
	}
}

func TestValidateBookingData_AdvanceWindow(t *testing.T) {
	v := newTestValidator(&memStores{room: standardRoom(1)}, mapSettings{
		models.SettingMaxAdvanceBookingDays: "30",
	})

	// Today is Jan 1, so the 30-day window closes at Jan 31.
	data := validBookingData()
	data.CheckInDate = "2026-01-31"
	data.CheckOutDate = "2026-02-01"
	fields := v.ValidateBookingData(data)
	require.NotContains(t, fields.Errors, "check_in_date")

	data.CheckInDate = "2026-02-01"
	data.CheckOutDate = "2026-02-02"
	fields = v.ValidateBookingData(data)
	require.Equal(t, "check-in cannot be more than 30 days in advance", fields.Errors["check_in_date"])
}

func TestValidateBookingData_AdvanceWindowFromSettings(t *testing.T) {
	v := newTestValidator(&memStores{room: standardRoom(1)}, mapSettings{
		models.SettingMaxAdvanceBookingDays: "7",
	})

	data := validBookingData()
	data.CheckInDate = "2026-01-09"
	data.CheckOutDate = "2026-01-11"
	fields := v.ValidateBookingData(data)
	require.Equal(t, "check-in cannot be more than 7 days in advance", fields.Errors["check_in_date"])
}

func TestValidateBookingData_StayLengthCeiling(t *testing.T) {
	v := newTestValidator(&memStores{room: standardRoom(1)}, mapSettings{
		models.SettingMaxAdvanceBookingDays: "60",
	})

	data := validBookingData()
	data.CheckInDate = "2026-01-02"
	data.CheckOutDate = "2026-02-05"
	fields := v.ValidateBookingData(data)
	require.Equal(t, "stay cannot exceed 30 nights", fields.Errors["check_out_date"])

	// Short stay, but the check-out lands past today+30.
	data.CheckInDate = "2026-01-30"
	data.CheckOutDate = "2026-02-02"
	fields = v.ValidateBookingData(data)
	require.Equal(t, "check-out cannot be more than 30 days from today", fields.Errors["check_out_date"])
}

func TestValidateBookingWithAvailability_FieldErrorsShortCircuit(t *testing.T) {
	// The room is fully booked, but a malformed email must surface as a
	// field failure before any availability query runs.
	stores := &memStores{
		room:     standardRoom(1),
		bookings: []models.Booking{activeBooking(1, day(2026, 1, 10), day(2026, 1, 12))},
	}
	v := newTestValidator(stores, mapSettings{})

	data := validBookingData()
	data.GuestEmail = "not-an-email"
	outcome := v.ValidateBookingWithAvailability(data, 0)
	require.False(t, outcome.Valid)
	require.Equal(t, ValidationTypeFields, outcome.Type)
	require.Contains(t, outcome.Errors, "guest_email")
	require.Nil(t, outcome.Availability)
}

func TestValidateBookingWithAvailability_Conflict(t *testing.T) {
	stores := &memStores{
		room:     standardRoom(1),
		bookings: []models.Booking{activeBooking(9, day(2026, 1, 10), day(2026, 1, 12))},
	}
	v := newTestValidator(stores, mapSettings{})

	outcome := v.ValidateBookingWithAvailability(validBookingData(), 0)
	require.False(t, outcome.Valid)
	require.Equal(t, ValidationTypeAvailability, outcome.Type)
	require.Equal(t, "room is not available for the selected dates", outcome.Message)
	require.Len(t, outcome.Conflicts, 1)
	require.Equal(t, uint(9), outcome.Conflicts[0].BookingID)
}

func TestValidateBookingWithAvailability_BusinessRejectionMessage(t *testing.T) {
	v := newTestValidator(&memStores{room: standardRoom(0)}, mapSettings{})

	outcome := v.ValidateBookingWithAvailability(validBookingData(), 0)
	require.False(t, outcome.Valid)
	require.Equal(t, ValidationTypeAvailability, outcome.Type)
	require.Equal(t, AvailErrNoRooms, outcome.Message)
	require.Empty(t, outcome.Conflicts)
}

func TestValidateBookingWithAvailability_Capacity(t *testing.T) {
	v := newTestValidator(&memStores{room: standardRoom(1)}, mapSettings{})

	data := validBookingData()
	data.NumberOfGuests = 5
	outcome := v.ValidateBookingWithAvailability(data, 0)
	require.False(t, outcome.Valid)
	require.Equal(t, ValidationTypeCapacity, outcome.Type)
	require.Equal(t, "this room sleeps at most 2 guests", outcome.Message)
	require.NotNil(t, outcome.Availability)
	require.True(t, outcome.Availability.Available)
}

func TestValidateBookingWithAvailability_ExcludeSelf(t *testing.T) {
	stores := &memStores{
		room:     standardRoom(1),
		bookings: []models.Booking{activeBooking(9, day(2026, 1, 10), day(2026, 1, 12))},
	}
	v := newTestValidator(stores, mapSettings{})

	outcome := v.ValidateBookingWithAvailability(validBookingData(), 9)
	require.True(t, outcome.Valid)
	require.NotNil(t, outcome.Availability)
	require.Equal(t, 2, outcome.Availability.Nights)
}

func TestValidateBookingWithAvailability_AcceptThenConflict(t *testing.T) {
	stores := &memStores{room: standardRoom(1)}
	v := newTestValidator(stores, mapSettings{})

	outcome := v.ValidateBookingWithAvailability(validBookingData(), 0)
	require.True(t, outcome.Valid)

	// The first guest's booking lands, then a second guest asks for the
	// same dates.
	stores.bookings = append(stores.bookings, activeBooking(1, day(2026, 1, 10), day(2026, 1, 12)))

	outcome = v.ValidateBookingWithAvailability(validBookingData(), 0)
	require.False(t, outcome.Valid)
	require.Equal(t, ValidationTypeAvailability, outcome.Type)
	require.Len(t, outcome.Conflicts, 1)
}
