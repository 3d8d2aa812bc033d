package models

import "time"

// Block types for manually blocked dates.
const (
	BlockTypeMaintenance = "maintenance"
	BlockTypeEvent       = "event"
	BlockTypeOther       = "other"
)

// BlockedDate is an admin-imposed single-date unavailability for a room
// type, independent of any booking.
//
// No soft delete here: the (room_type_id, block_date) unique index is what
// makes blocking idempotent, and a lingering soft-deleted row would collide
// with a later re-block of the same date.
type BlockedDate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomTypeID uint      `gorm:"column:room_type_id;uniqueIndex:idx_room_block_date" json:"room_id"`
	BlockDate  time.Time `gorm:"column:block_date;uniqueIndex:idx_room_block_date" json:"block_date"`
	BlockType  string    `gorm:"column:block_type;size:32;default:other" json:"block_type"`
	Reason     string    `gorm:"column:reason;size:255" json:"reason,omitempty"`
	CreatedBy  string    `gorm:"column:created_by;size:100" json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NormalizeBlockType maps unknown block types onto "other".
func NormalizeBlockType(t string) string {
	switch t {
	case BlockTypeMaintenance, BlockTypeEvent, BlockTypeOther:
		return t
	default:
		return BlockTypeOther
	}
}
