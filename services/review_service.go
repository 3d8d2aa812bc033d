package services

import (
	"gorm.io/gorm"

	"hotel-site-backend/models"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// Create stores a guest-submitted review; it stays hidden until approved.
func (s *ReviewService) Create(review *models.Review) error {
	review.IsApproved = false
	if review.Rating < 1 {
		review.Rating = 1
	}
	if review.Rating > 5 {
		review.Rating = 5
	}
	return s.DB.Create(review).Error
}

func (s *ReviewService) GetApproved() ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Where("is_approved = ?", true).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (s *ReviewService) GetAll() ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (s *ReviewService) SetApproved(id uint, approved bool) error {
	return s.DB.Model(&models.Review{}).Where("id = ?", id).
		Update("is_approved", approved).Error
}

func (s *ReviewService) Delete(id uint) error {
	return s.DB.Delete(&models.Review{}, id).Error
}
