package services

import (
	"gorm.io/gorm"

	"hotel-site-backend/models"
)

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

func (s *MenuService) Create(item *models.MenuItem) error {
	return s.DB.Create(item).Error
}

func (s *MenuService) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.DB.Order("category ASC, sort_order ASC").Find(&items).Error
	return items, err
}

// GetAvailable returns the dishes shown on the public menu page.
func (s *MenuService) GetAvailable() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.DB.Where("is_available = ?", true).
		Order("category ASC, sort_order ASC").
		Find(&items).Error
	return items, err
}

func (s *MenuService) Update(item *models.MenuItem) error {
	return s.DB.Model(&models.MenuItem{}).Where("id = ?", item.ID).Updates(item).Error
}

func (s *MenuService) Delete(id uint) error {
	return s.DB.Delete(&models.MenuItem{}, id).Error
}
