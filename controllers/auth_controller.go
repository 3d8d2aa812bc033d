// controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-site-backend/services"
	"hotel-site-backend/utils"
)

type AuthController struct {
	Admins *services.AdminService
}

func NewAuthController(svc *services.AdminService) *AuthController {
	return &AuthController{Admins: svc}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/admin/login.
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	admin, err := ctrl.Admins.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid username or password")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
		"fullName": admin.FullName,
	})
}
