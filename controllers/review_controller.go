// controllers/review_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-site-backend/models"
	"hotel-site-backend/services"
	"hotel-site-backend/utils"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: svc}
}

// GetReviews handles GET /api/reviews. Approved reviews only.
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := ctrl.Reviews.GetApproved()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve reviews")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}

// CreateReview handles POST /api/reviews. Guest submissions start unapproved.
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if review.GuestName == "" || review.Comment == "" {
		utils.JSONError(c, http.StatusBadRequest, "guest_name and comment are required")
		return
	}
	if err := ctrl.Reviews.Create(&review); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create review")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}

func (ctrl *ReviewController) GetAllReviews(c *gin.Context) {
	reviews, err := ctrl.Reviews.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve reviews")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}

// ApproveReview handles PATCH /api/admin/reviews/:id with {"approved": bool}.
func (ctrl *ReviewController) ApproveReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid review id")
		return
	}
	var payload struct {
		Approved bool `json:"approved"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := ctrl.Reviews.SetApproved(uint(id), payload.Approved); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update review")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"approved": payload.Approved})
}

func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid review id")
		return
	}
	if err := ctrl.Reviews.Delete(uint(id)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete review")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
