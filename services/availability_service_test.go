package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hotel-site-backend/models"
	"hotel-site-backend/repository"
	"hotel-site-backend/utils"
)

// testToday is the fixed clock for all availability tests.
var testToday = time.Date(2026, 1, 1, 10, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// memStores is an in-memory implementation of the three store interfaces,
// mirroring the half-open overlap rule of the SQL queries. Setting failWith
// makes every call fail, for the fail-closed tests.
type memStores struct {
	room     *models.RoomType
	bookings []models.Booking
	blocked  []models.BlockedDate
	failWith error
}

func (m *memStores) GetRoomType(id uint) (*models.RoomType, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if m.room == nil || m.room.ID != id {
		return nil, repository.ErrRoomTypeNotFound
	}
	return m.room, nil
}

func (m *memStores) FindOverlapping(roomTypeID uint, checkIn, checkOut time.Time, excludeID uint) ([]models.Booking, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.Booking
	for _, b := range m.bookings {
		if b.RoomTypeID != roomTypeID || !b.IsActive() {
			continue
		}
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStores) CountOverlapping(roomTypeID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	overlaps, err := m.FindOverlapping(roomTypeID, checkIn, checkOut, excludeID)
	if err != nil {
		return 0, err
	}
	return int64(len(overlaps)), nil
}

func (m *memStores) ListForRoom(roomTypeID uint, from, to *time.Time) ([]models.BlockedDate, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.BlockedDate
	for _, bd := range m.blocked {
		if bd.RoomTypeID != roomTypeID {
			continue
		}
		if from != nil && bd.BlockDate.Before(*from) {
			continue
		}
		if to != nil && bd.BlockDate.After(*to) {
			continue
		}
		out = append(out, bd)
	}
	return out, nil
}

func (m *memStores) Upsert(bd *models.BlockedDate) error {
	if m.failWith != nil {
		return m.failWith
	}
	for _, existing := range m.blocked {
		if existing.RoomTypeID == bd.RoomTypeID && existing.BlockDate.Equal(bd.BlockDate) {
			return nil // unique index hit, idempotent
		}
	}
	m.blocked = append(m.blocked, *bd)
	return nil
}

func (m *memStores) Remove(roomTypeID uint, date time.Time) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	for i, bd := range m.blocked {
		if bd.RoomTypeID == roomTypeID && bd.BlockDate.Equal(date) {
			m.blocked = append(m.blocked[:i], m.blocked[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newTestAvailability(stores *memStores) *AvailabilityService {
	svc := NewAvailabilityService(stores, stores, stores)
	svc.now = func() time.Time { return testToday }
	return svc
}

func standardRoom(roomsAvailable int) *models.RoomType {
	return &models.RoomType{
		ID:             1,
		TypeName:       "Standard",
		MaxGuests:      2,
		TotalRooms:     2,
		RoomsAvailable: roomsAvailable,
		IsActive:       true,
	}
}

func activeBooking(id uint, checkIn, checkOut time.Time) models.Booking {
	return models.Booking{
		ID:            id,
		RoomTypeID:    1,
		ReferenceCode: "BK-TEST0001",
		Status:        models.BookingStatusConfirmed,
		GuestName:     "Alice Example",
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
	}
}

func TestIsRoomAvailable_FailsClosedOnStoreFault(t *testing.T) {
	stores := &memStores{room: standardRoom(1), failWith: errors.New("connection refused")}
	svc := newTestAvailability(stores)

	require.False(t, svc.IsRoomAvailable(1, "2026-01-12", "2026-01-14", 0))

	result := svc.CheckRoomAvailability(1, "2026-01-12", "2026-01-14", 0)
	require.False(t, result.Available)
	require.Equal(t, AvailErrDatabase, result.Error)
}

func TestIsRoomAvailable_HalfOpenOverlap(t *testing.T) {
	stores := &memStores{
		room:     standardRoom(1),
		bookings: []models.Booking{activeBooking(1, day(2026, 1, 10), day(2026, 1, 15))},
	}
	svc := newTestAvailability(stores)

	// Adjacent after: existing checkout day == new check-in day.
	require.True(t, svc.IsRoomAvailable(1, "2026-01-15", "2026-01-20", 0))
	// True overlap in the middle.
	require.False(t, svc.IsRoomAvailable(1, "2026-01-12", "2026-01-18", 0))
	// Adjacent before: new checkout day == existing check-in day.
	require.True(t, svc.IsRoomAvailable(1, "2026-01-05", "2026-01-10", 0))
}

func TestIsRoomAvailable_ExcludeSelf(t *testing.T) {
	stores := &memStores{
		room: standardRoom(1),
		bookings: []models.Booking{
			activeBooking(7, day(2026, 1, 10), day(2026, 1, 15)),
			activeBooking(8, day(2026, 2, 1), day(2026, 2, 3)),
		},
	}
	svc := newTestAvailability(stores)

	// Re-validating booking 7 against its own unchanged range.
	require.True(t, svc.IsRoomAvailable(1, "2026-01-10", "2026-01-15", 7))
	require.False(t, svc.IsRoomAvailable(1, "2026-01-10", "2026-01-15", 0))
}

func TestIsRoomAvailable_CapacityCeilingIsStrict(t *testing.T) {
	// N non-mutually-overlapping bookings that all overlap the query: the
	// count is compared with count < roomsAvailable, strictly.
	stores := &memStores{
		room: standardRoom(2),
		bookings: []models.Booking{
			activeBooking(1, day(2026, 1, 10), day(2026, 1, 15)),
		},
	}
	svc := newTestAvailability(stores)
	require.True(t, svc.IsRoomAvailable(1, "2026-01-12", "2026-01-14", 0))

	stores.bookings = append(stores.bookings, activeBooking(2, day(2026, 1, 12), day(2026, 1, 14)))
	require.False(t, svc.IsRoomAvailable(1, "2026-01-12", "2026-01-14", 0))
}

func TestIsRoomAvailable_IgnoresInactiveBookings(t *testing.T) {
	cancelled := activeBooking(1, day(2026, 1, 10), day(2026, 1, 15))
	cancelled.Status = models.BookingStatusCancelled
	expired := activeBooking(2, day(2026, 1, 10), day(2026, 1, 15))
	expired.Status = models.BookingStatusExpired

	stores := &memStores{room: standardRoom(1), bookings: []models.Booking{cancelled, expired}}
	svc := newTestAvailability(stores)

	require.True(t, svc.IsRoomAvailable(1, "2026-01-12", "2026-01-14", 0))
}

func TestCheckRoomAvailability_OrderedChecks(t *testing.T) {
	stores := &memStores{room: standardRoom(1)}
	svc := newTestAvailability(stores)

	cases := []struct {
		name     string
		roomID   uint
		checkIn  string
		checkOut string
		wantErr  string
	}{
		{"unknown room", 99, "2026-01-10", "2026-01-12", AvailErrRoomNotFound},
		{"invalid date", 1, "not-a-date", "2026-01-12", AvailErrInvalidDate},
		{"check-in in the past", 1, "2025-12-28", "2026-01-12", AvailErrCheckInPast},
		{"check-out not after check-in", 1, "2026-01-12", "2026-01-12", AvailErrCheckOutOrder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := svc.CheckRoomAvailability(tc.roomID, tc.checkIn, tc.checkOut, 0)
			require.False(t, result.Available)
			require.Equal(t, tc.wantErr, result.Error)
		})
	}

	t.Run("inactive room", func(t *testing.T) {
		stores.room.IsActive = false
		defer func() { stores.room.IsActive = true }()
		result := svc.CheckRoomAvailability(1, "2026-01-10", "2026-01-12", 0)
		require.Equal(t, AvailErrRoomNotFound, result.Error)
	})

	t.Run("no inventory", func(t *testing.T) {
		stores.room.RoomsAvailable = 0
		defer func() { stores.room.RoomsAvailable = 1 }()
		result := svc.CheckRoomAvailability(1, "2026-01-10", "2026-01-12", 0)
		require.Equal(t, AvailErrNoRooms, result.Error)
	})
}

func TestCheckRoomAvailability_ConflictDetail(t *testing.T) {
	first := activeBooking(1, day(2026, 1, 10), day(2026, 1, 15))
	second := activeBooking(2, day(2026, 1, 16), day(2026, 1, 20))
	second.ReferenceCode = "BK-TEST0002"
	second.GuestName = "Bob Example"

	stores := &memStores{room: standardRoom(1), bookings: []models.Booking{first, second}}
	svc := newTestAvailability(stores)

	result := svc.CheckRoomAvailability(1, "2026-01-12", "2026-01-18", 0)
	require.False(t, result.Available)
	require.Empty(t, result.Error)
	require.Len(t, result.Conflicts, 2)
	require.Equal(t, "BK-TEST0001", result.Conflicts[0].ReferenceCode)
	require.Equal(t, "BK-TEST0002", result.Conflicts[1].ReferenceCode)
	require.Contains(t, result.ConflictMessage, "; ")
	require.Contains(t, result.ConflictMessage, "Alice Example")
	require.Contains(t, result.ConflictMessage, "Bob Example")
}

func TestCheckRoomAvailability_Success(t *testing.T) {
	stores := &memStores{room: standardRoom(1)}
	svc := newTestAvailability(stores)

	result := svc.CheckRoomAvailability(1, "2026-03-10", "2026-03-12", 0)
	require.True(t, result.Available)
	require.Equal(t, 2, result.Nights)
	require.Equal(t, 2, result.MaxGuests)
	require.Empty(t, result.Error)
	require.Empty(t, result.Conflicts)
}

func TestBlockDate_Idempotent(t *testing.T) {
	stores := &memStores{room: standardRoom(1)}
	svc := newTestAvailability(stores)

	require.True(t, svc.BlockDate(1, "2026-02-10", "maintenance", "boiler", "admin"))
	require.True(t, svc.BlockDate(1, "2026-02-10", "maintenance", "boiler", "admin"))
	require.Len(t, stores.blocked, 1)

	require.False(t, svc.BlockDate(1, "02/10/2026", "maintenance", "boiler", "admin"))
}

func TestBlockDates_PartialSuccess(t *testing.T) {
	stores := &memStores{room: standardRoom(1)}
	svc := newTestAvailability(stores)

	blocked := svc.BlockDates(1, []string{"2026-02-10", "bogus", "2026-02-11"}, "event", "wedding", "admin")
	require.Equal(t, 2, blocked)
	require.Len(t, stores.blocked, 2)
}

func TestUnblockDates(t *testing.T) {
	stores := &memStores{
		room: standardRoom(1),
		blocked: []models.BlockedDate{
			{RoomTypeID: 1, BlockDate: day(2026, 2, 10), BlockType: models.BlockTypeEvent},
			{RoomTypeID: 1, BlockDate: day(2026, 2, 11), BlockType: models.BlockTypeEvent},
		},
	}
	svc := newTestAvailability(stores)

	require.True(t, svc.UnblockDate(1, "2026-02-10"))
	require.False(t, svc.UnblockDate(1, "2026-02-10"))
	require.Equal(t, 1, svc.UnblockDates(1, []string{"2026-02-11", "2026-02-12"}))
	require.Empty(t, stores.blocked)
}

func TestGetBlockedDates_RangeFilter(t *testing.T) {
	stores := &memStores{
		room: standardRoom(1),
		blocked: []models.BlockedDate{
			{RoomTypeID: 1, BlockDate: day(2026, 2, 1)},
			{RoomTypeID: 1, BlockDate: day(2026, 2, 15)},
			{RoomTypeID: 1, BlockDate: day(2026, 3, 1)},
		},
	}
	svc := newTestAvailability(stores)

	blocked, err := svc.GetBlockedDates(1, "2026-02-10", "2026-02-28")
	require.NoError(t, err)
	require.Len(t, blocked, 1)
	require.Equal(t, day(2026, 2, 15), blocked[0].BlockDate)

	_, err = svc.GetBlockedDates(1, "bogus", "")
	require.ErrorIs(t, err, utils.ErrInvalidDateFormat)
}

func TestGetAvailableDates_ExcludesBlockedAndFullDays(t *testing.T) {
	stores := &memStores{
		room: standardRoom(1),
		bookings: []models.Booking{
			activeBooking(1, day(2026, 2, 3), day(2026, 2, 5)), // occupies Feb 3, Feb 4
		},
		blocked: []models.BlockedDate{
			{RoomTypeID: 1, BlockDate: day(2026, 2, 2), BlockType: models.BlockTypeMaintenance},
		},
	}
	svc := newTestAvailability(stores)

	dates, err := svc.GetAvailableDates(1, "2026-02-01", "2026-02-05")
	require.NoError(t, err)
	require.Equal(t, []string{"2026-02-01", "2026-02-05"}, dates)
}

func TestGetAvailableDates_BlockedEvenWithZeroBookings(t *testing.T) {
	stores := &memStores{
		room: standardRoom(1),
		blocked: []models.BlockedDate{
			{RoomTypeID: 1, BlockDate: day(2026, 2, 2), BlockType: models.BlockTypeOther},
		},
	}
	svc := newTestAvailability(stores)

	dates, err := svc.GetAvailableDates(1, "2026-02-01", "2026-02-03")
	require.NoError(t, err)
	require.NotContains(t, dates, "2026-02-02")
	require.Equal(t, []string{"2026-02-01", "2026-02-03"}, dates)
}

func TestGetAvailableDates_NoInventory(t *testing.T) {
	stores := &memStores{room: standardRoom(0)}
	svc := newTestAvailability(stores)

	dates, err := svc.GetAvailableDates(1, "2026-02-01", "2026-02-03")
	require.NoError(t, err)
	require.Empty(t, dates)
}
