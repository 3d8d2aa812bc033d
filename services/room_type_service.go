package services

import (
	"gorm.io/gorm"

	"hotel-site-backend/models"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	return s.DB.Create(rt).Error
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Order("id ASC").Find(&types).Error
	return types, err
}

// GetActive returns the room types shown on the public rooms page.
func (s *RoomTypeService) GetActive() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Where("is_active = ?", true).Order("price_per_night ASC").Find(&types).Error
	return types, err
}

func (s *RoomTypeService) GetByID(id uint) (models.RoomType, error) {
	var rt models.RoomType
	err := s.DB.First(&rt, id).Error
	return rt, err
}

func (s *RoomTypeService) Update(rt *models.RoomType) error {
	return s.DB.Model(&models.RoomType{}).Where("id = ?", rt.ID).Updates(rt).Error
}

func (s *RoomTypeService) Delete(id uint) error {
	return s.DB.Delete(&models.RoomType{}, id).Error
}
