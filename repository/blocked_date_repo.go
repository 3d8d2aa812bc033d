package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"hotel-site-backend/models"
)

// MySQL duplicate-entry error number.
const mysqlErrDuplicateEntry = 1062

type BlockedDateRepo struct {
	db *gorm.DB
}

func NewBlockedDateRepo(db *gorm.DB) *BlockedDateRepo {
	return &BlockedDateRepo{db: db}
}

// ListForRoom returns blocked dates for a room type, optionally limited to
// [from, to] inclusive, ordered by date ascending.
func (r *BlockedDateRepo) ListForRoom(roomTypeID uint, from, to *time.Time) ([]models.BlockedDate, error) {
	q := r.db.Where("room_type_id = ?", roomTypeID)
	if from != nil {
		q = q.Where("block_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("block_date <= ?", *to)
	}

	var blocked []models.BlockedDate
	if err := q.Order("block_date ASC").Find(&blocked).Error; err != nil {
		return nil, fmt.Errorf("failed to list blocked dates: %w", err)
	}
	return blocked, nil
}

// Upsert inserts a blocked date. A duplicate on the (room_type_id,
// block_date) unique index is treated as success so blocking is idempotent.
func (r *BlockedDateRepo) Upsert(bd *models.BlockedDate) error {
	if err := r.db.Create(bd).Error; err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlErrDuplicateEntry {
			return nil
		}
		return fmt.Errorf("failed to block date: %w", err)
	}
	return nil
}

// Remove hard-deletes the block for a (room, date) pair. Returns true iff a
// row was removed.
func (r *BlockedDateRepo) Remove(roomTypeID uint, date time.Time) (bool, error) {
	res := r.db.Where("room_type_id = ? AND block_date = ?", roomTypeID, date).
		Delete(&models.BlockedDate{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to unblock date: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
