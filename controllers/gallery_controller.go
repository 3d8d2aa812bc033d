// controllers/gallery_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-site-backend/models"
	"hotel-site-backend/services"
	"hotel-site-backend/utils"
)

type GalleryController struct {
	Gallery *services.GalleryService
}

func NewGalleryController(svc *services.GalleryService) *GalleryController {
	return &GalleryController{Gallery: svc}
}

// GetGallery handles GET /api/gallery?category=
func (ctrl *GalleryController) GetGallery(c *gin.Context) {
	images, err := ctrl.Gallery.GetAll(c.Query("category"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve gallery")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, images)
}

func (ctrl *GalleryController) CreateGalleryImage(c *gin.Context) {
	var img models.GalleryImage
	if err := c.ShouldBindJSON(&img); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if img.ImagePath == "" {
		utils.JSONError(c, http.StatusBadRequest, "image_path is required")
		return
	}
	if err := ctrl.Gallery.Create(&img); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create gallery image")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, img)
}

func (ctrl *GalleryController) DeleteGalleryImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid image id")
		return
	}
	if err := ctrl.Gallery.Delete(uint(id)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete gallery image")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
