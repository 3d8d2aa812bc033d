package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-site-backend/models"
)

var ErrInvalidCredentials = errors.New("invalid_credentials")

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

// Authenticate verifies an admin's username/password pair against the
// stored bcrypt hash. Unknown usernames and bad passwords are
// indistinguishable to the caller.
func (s *AdminService) Authenticate(username, password string) (*models.Admin, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var admin models.Admin
	if err := s.DB.Where("LOWER(username) = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &admin, nil
}
