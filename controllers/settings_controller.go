// controllers/settings_controller.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-site-backend/repository"
	"hotel-site-backend/services"
	"hotel-site-backend/utils"
)

type SettingsController struct {
	Store    *repository.SettingRepo
	Settings *services.SettingsService
}

func NewSettingsController(store *repository.SettingRepo, settings *services.SettingsService) *SettingsController {
	return &SettingsController{Store: store, Settings: settings}
}

// Keys exposed on the public site profile endpoint.
var publicSettingKeys = []string{"hotel_name", "hotel_phone", "hotel_email", "hotel_address"}

// GetPublicSettings handles GET /api/settings, the hotel profile for the site
// header/footer. Served through the TTL cache.
func (ctrl *SettingsController) GetPublicSettings(c *gin.Context) {
	out := gin.H{}
	for _, key := range publicSettingKeys {
		out[key] = ctrl.Settings.Get(key, "")
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// GetAllSettings handles GET /api/admin/settings.
func (ctrl *SettingsController) GetAllSettings(c *gin.Context) {
	settings, err := ctrl.Store.ListAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve settings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/admin/settings with a flat key/value map.
// Each written key is invalidated in the read-through cache.
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	var payload map[string]string
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if len(payload) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "no settings provided")
		return
	}

	for key, value := range payload {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if err := ctrl.Store.SetValue(key, value); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to update setting "+key)
			return
		}
		ctrl.Settings.Invalidate(key)
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"updated": len(payload)})
}
