package services

import (
	"gorm.io/gorm"

	"hotel-site-backend/models"
)

type GalleryService struct {
	DB *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{DB: db}
}

func (s *GalleryService) Create(img *models.GalleryImage) error {
	return s.DB.Create(img).Error
}

func (s *GalleryService) GetAll(category string) ([]models.GalleryImage, error) {
	q := s.DB.Order("sort_order ASC, id ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var images []models.GalleryImage
	err := q.Find(&images).Error
	return images, err
}

func (s *GalleryService) Delete(id uint) error {
	return s.DB.Delete(&models.GalleryImage{}, id).Error
}
