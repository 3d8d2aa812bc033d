package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hotel-site-backend/models"
	"hotel-site-backend/repository"
	"hotel-site-backend/utils"
)

// AvailabilityResult error codes.
const (
	AvailErrRoomNotFound  = "room not found or inactive"
	AvailErrCheckInPast   = "check-in in the past"
	AvailErrCheckOutOrder = "check-out before check-in"
	AvailErrNoRooms       = "no rooms of this type available"
	AvailErrInvalidDate   = "invalid date format"
	AvailErrDatabase      = "database error"
)

// BookingConflict is one overlapping booking in an AvailabilityResult,
// trimmed to what the frontend may show a guest or an admin.
type BookingConflict struct {
	BookingID     uint   `json:"booking_id"`
	ReferenceCode string `json:"reference_code"`
	GuestName     string `json:"guest_name"`
	CheckInDate   string `json:"check_in_date"`
	CheckOutDate  string `json:"check_out_date"`
}

// AvailabilityResult is the diagnostic answer to "is this room free for
// [checkIn, checkOut)?". Business rejections set Error; conflicts are only
// populated when existing bookings are what blocks the range.
type AvailabilityResult struct {
	Available       bool              `json:"available"`
	Conflicts       []BookingConflict `json:"conflicts,omitempty"`
	ConflictMessage string            `json:"conflict_message,omitempty"`
	Nights          int               `json:"nights,omitempty"`
	MaxGuests       int               `json:"max_guests,omitempty"`
	Error           string            `json:"error,omitempty"`
}

// AvailabilityService decides whether a room type can accept a stay and
// enumerates free/blocked dates. All storage faults fail closed: a room
// whose availability cannot be confirmed is reported unavailable.
type AvailabilityService struct {
	rooms    RoomTypeStore
	bookings BookingStore
	blocked  BlockedDateStore

	now func() time.Time
}

func NewAvailabilityService(rooms RoomTypeStore, bookings BookingStore, blocked BlockedDateStore) *AvailabilityService {
	return &AvailabilityService{
		rooms:    rooms,
		bookings: bookings,
		blocked:  blocked,
		now:      time.Now,
	}
}

func (s *AvailabilityService) today() time.Time {
	return utils.DateOnly(s.now())
}

// IsRoomAvailable is the boolean fast path used by handlers that only need
// a yes/no. Any parse or storage failure returns false.
func (s *AvailabilityService) IsRoomAvailable(roomTypeID uint, checkIn, checkOut string, excludeBookingID uint) bool {
	ci, err := utils.ParseDate(checkIn)
	if err != nil {
		return false
	}
	co, err := utils.ParseDate(checkOut)
	if err != nil {
		return false
	}

	room, err := s.rooms.GetRoomType(roomTypeID)
	if err != nil {
		return false
	}
	if room.RoomsAvailable <= 0 {
		return false
	}

	count, err := s.bookings.CountOverlapping(roomTypeID, ci, co, excludeBookingID)
	if err != nil {
		log.Printf("warning: availability count failed for room %d: %v", roomTypeID, err)
		return false
	}
	return count < int64(room.RoomsAvailable)
}

// CheckRoomAvailability is the diagnostic superset of IsRoomAvailable.
// Checks run in a fixed order: room existence, date validity, date-in-past,
// date ordering, inventory, then overlaps.
func (s *AvailabilityService) CheckRoomAvailability(roomTypeID uint, checkIn, checkOut string, excludeBookingID uint) AvailabilityResult {
	room, err := s.rooms.GetRoomType(roomTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomTypeNotFound) {
			return AvailabilityResult{Available: false, Error: AvailErrRoomNotFound}
		}
		log.Printf("warning: room lookup failed for room %d: %v", roomTypeID, err)
		return AvailabilityResult{Available: false, Error: AvailErrDatabase}
	}
	if !room.IsActive {
		return AvailabilityResult{Available: false, Error: AvailErrRoomNotFound}
	}

	ci, err := utils.ParseDate(checkIn)
	if err != nil {
		return AvailabilityResult{Available: false, Error: AvailErrInvalidDate}
	}
	co, err := utils.ParseDate(checkOut)
	if err != nil {
		return AvailabilityResult{Available: false, Error: AvailErrInvalidDate}
	}

	if ci.Before(s.today()) {
		return AvailabilityResult{Available: false, Error: AvailErrCheckInPast}
	}
	if !co.After(ci) {
		return AvailabilityResult{Available: false, Error: AvailErrCheckOutOrder}
	}
	if room.RoomsAvailable <= 0 {
		return AvailabilityResult{Available: false, Error: AvailErrNoRooms}
	}

	overlaps, err := s.bookings.FindOverlapping(roomTypeID, ci, co, excludeBookingID)
	if err != nil {
		log.Printf("warning: overlap query failed for room %d: %v", roomTypeID, err)
		return AvailabilityResult{Available: false, Error: AvailErrDatabase}
	}

	if len(overlaps) >= room.RoomsAvailable {
		conflicts := make([]BookingConflict, 0, len(overlaps))
		summaries := make([]string, 0, len(overlaps))
		for _, b := range overlaps {
			c := BookingConflict{
				BookingID:     b.ID,
				ReferenceCode: b.ReferenceCode,
				GuestName:     b.GuestName,
				CheckInDate:   utils.FormatDate(b.CheckInDate),
				CheckOutDate:  utils.FormatDate(b.CheckOutDate),
			}
			conflicts = append(conflicts, c)
			summaries = append(summaries, fmt.Sprintf("booking %s (%s) %s to %s",
				c.ReferenceCode, c.GuestName, c.CheckInDate, c.CheckOutDate))
		}
		return AvailabilityResult{
			Available:       false,
			Conflicts:       conflicts,
			ConflictMessage: strings.Join(summaries, "; "),
		}
	}

	return AvailabilityResult{
		Available: true,
		Nights:    utils.NightsBetween(ci, co),
		MaxGuests: room.MaxGuests,
	}
}

// GetBlockedDates lists manual blocks for a room type, filtered to
// [rangeStart, rangeEnd] when given (empty strings mean unbounded).
func (s *AvailabilityService) GetBlockedDates(roomTypeID uint, rangeStart, rangeEnd string) ([]models.BlockedDate, error) {
	var from, to *time.Time
	if strings.TrimSpace(rangeStart) != "" {
		t, err := utils.ParseDate(rangeStart)
		if err != nil {
			return nil, err
		}
		from = &t
	}
	if strings.TrimSpace(rangeEnd) != "" {
		t, err := utils.ParseDate(rangeEnd)
		if err != nil {
			return nil, err
		}
		to = &t
	}
	return s.blocked.ListForRoom(roomTypeID, from, to)
}

// BlockDate blocks a single date for a room type. Blocking an
// already-blocked date succeeds without duplicating the row.
func (s *AvailabilityService) BlockDate(roomTypeID uint, date, blockType, reason, createdBy string) bool {
	d, err := utils.ParseDate(date)
	if err != nil {
		return false
	}
	bd := models.BlockedDate{
		RoomTypeID: roomTypeID,
		BlockDate:  d,
		BlockType:  models.NormalizeBlockType(blockType),
		Reason:     strings.TrimSpace(reason),
		CreatedBy:  strings.TrimSpace(createdBy),
	}
	if err := s.blocked.Upsert(&bd); err != nil {
		log.Printf("warning: block date failed for room %d on %s: %v", roomTypeID, date, err)
		return false
	}
	return true
}

// BlockDates applies BlockDate per date; partial success is allowed and the
// return value counts the dates actually blocked.
func (s *AvailabilityService) BlockDates(roomTypeID uint, dates []string, blockType, reason, createdBy string) int {
	blocked := 0
	for _, date := range dates {
		if s.BlockDate(roomTypeID, date, blockType, reason, createdBy) {
			blocked++
		}
	}
	return blocked
}

// UnblockDate removes a manual block. Returns true iff a row was removed.
func (s *AvailabilityService) UnblockDate(roomTypeID uint, date string) bool {
	d, err := utils.ParseDate(date)
	if err != nil {
		return false
	}
	removed, err := s.blocked.Remove(roomTypeID, d)
	if err != nil {
		log.Printf("warning: unblock date failed for room %d on %s: %v", roomTypeID, date, err)
		return false
	}
	return removed
}

func (s *AvailabilityService) UnblockDates(roomTypeID uint, dates []string) int {
	removed := 0
	for _, date := range dates {
		if s.UnblockDate(roomTypeID, date) {
			removed++
		}
	}
	return removed
}

// GetAvailableDates enumerates every date in [rangeStart, rangeEnd] that is
// neither manually blocked nor fully booked on that single day. Each day is
// an independent [d, d+1) availability check, which is not the same thing
// as CheckRoomAvailability over the whole range.
func (s *AvailabilityService) GetAvailableDates(roomTypeID uint, rangeStart, rangeEnd string) ([]string, error) {
	start, err := utils.ParseDate(rangeStart)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseDate(rangeEnd)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.GetRoomType(roomTypeID)
	if err != nil {
		return nil, err
	}

	available := []string{}
	if room.RoomsAvailable <= 0 || end.Before(start) {
		return available, nil
	}

	blockedRows, err := s.blocked.ListForRoom(roomTypeID, &start, &end)
	if err != nil {
		return nil, err
	}
	blockedSet := make(map[string]struct{}, len(blockedRows))
	for _, row := range blockedRows {
		blockedSet[utils.FormatDate(row.BlockDate)] = struct{}{}
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := utils.FormatDate(d)
		if _, isBlocked := blockedSet[key]; isBlocked {
			continue
		}
		count, err := s.bookings.CountOverlapping(roomTypeID, d, d.AddDate(0, 0, 1), 0)
		if err != nil {
			return nil, err
		}
		if count < int64(room.RoomsAvailable) {
			available = append(available, key)
		}
	}
	return available, nil
}
