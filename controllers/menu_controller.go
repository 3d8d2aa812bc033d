// controllers/menu_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-site-backend/models"
	"hotel-site-backend/services"
	"hotel-site-backend/utils"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Menu: svc}
}

// GetMenu handles GET /api/menu, the available dishes for the public page.
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	items, err := ctrl.Menu.GetAvailable()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve menu")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (ctrl *MenuController) GetAllMenuItems(c *gin.Context) {
	items, err := ctrl.Menu.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve menu")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (ctrl *MenuController) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ctrl.Menu.Create(&item); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create menu item")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

func (ctrl *MenuController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid menu item id")
		return
	}
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	item.ID = uint(id)
	if err := ctrl.Menu.Update(&item); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update menu item")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

func (ctrl *MenuController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid menu item id")
		return
	}
	if err := ctrl.Menu.Delete(uint(id)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete menu item")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
