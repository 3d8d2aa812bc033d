package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotel-site-backend/models"
)

type SettingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) *SettingRepo {
	return &SettingRepo{db: db}
}

func (r *SettingRepo) GetValue(key string) (string, error) {
	var setting models.SiteSetting
	if err := r.db.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSettingNotFound
		}
		return "", fmt.Errorf("failed to load setting %q: %w", key, err)
	}
	return setting.SettingValue, nil
}

// SetValue creates or updates a setting row.
func (r *SettingRepo) SetValue(key, value string) error {
	var setting models.SiteSetting
	err := r.db.Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setting = models.SiteSetting{SettingKey: key, SettingValue: value}
			if err := r.db.Create(&setting).Error; err != nil {
				return fmt.Errorf("failed to create setting %q: %w", key, err)
			}
			return nil
		}
		return fmt.Errorf("failed to load setting %q: %w", key, err)
	}

	setting.SettingValue = value
	if err := r.db.Save(&setting).Error; err != nil {
		return fmt.Errorf("failed to update setting %q: %w", key, err)
	}
	return nil
}

// ListAll returns every setting row, for the admin settings screen.
func (r *SettingRepo) ListAll() ([]models.SiteSetting, error) {
	var settings []models.SiteSetting
	if err := r.db.Order("setting_key ASC").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}
