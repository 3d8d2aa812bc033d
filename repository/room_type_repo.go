package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotel-site-backend/models"
)

type RoomTypeRepo struct {
	db *gorm.DB
}

func NewRoomTypeRepo(db *gorm.DB) *RoomTypeRepo {
	return &RoomTypeRepo{db: db}
}

func (r *RoomTypeRepo) GetRoomType(id uint) (*models.RoomType, error) {
	var rt models.RoomType
	if err := r.db.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("failed to load room type %d: %w", id, err)
	}
	return &rt, nil
}
