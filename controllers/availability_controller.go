// controllers/availability_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-site-backend/services"
	"hotel-site-backend/utils"
)

type AvailabilityController struct {
	Availability *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Availability: svc}
}

// BlockDatesPayload accepts either a single date or a list.
type BlockDatesPayload struct {
	Date      string   `json:"date"`
	Dates     []string `json:"dates"`
	BlockType string   `json:"block_type"`
	Reason    string   `json:"reason"`
	CreatedBy string   `json:"created_by"`
}

type UnblockDatesPayload struct {
	Date  string   `json:"date"`
	Dates []string `json:"dates"`
}

func roomIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return 0, false
	}
	return uint(id), true
}

// CheckAvailability handles GET /api/availability?room_id=&check_in=&check_out=
// Business rejections still respond 200; Available=false carries the reason.
func (ctrl *AvailabilityController) CheckAvailability(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Query("room_id"), 10, 32)
	if err != nil || roomID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "room_id is required")
		return
	}
	checkIn := c.Query("check_in")
	checkOut := c.Query("check_out")
	if checkIn == "" || checkOut == "" {
		utils.JSONError(c, http.StatusBadRequest, "check_in and check_out are required")
		return
	}

	var excludeID uint
	if raw := c.Query("exclude_booking_id"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			excludeID = uint(v)
		}
	}

	result := ctrl.Availability.CheckRoomAvailability(uint(roomID), checkIn, checkOut, excludeID)
	utils.JSONSuccess(c, http.StatusOK, result)
}

// GetAvailableDates handles GET /api/rooms/:id/available-dates?start=&end=
func (ctrl *AvailabilityController) GetAvailableDates(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		utils.JSONError(c, http.StatusBadRequest, "start and end are required")
		return
	}

	dates, err := ctrl.Availability.GetAvailableDates(roomID, start, end)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidDateFormat) {
			utils.JSONError(c, http.StatusBadRequest, "invalid date format")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"dates": dates})
}

// GetBlockedDates handles GET /api/rooms/:id/blocked-dates?start=&end=
func (ctrl *AvailabilityController) GetBlockedDates(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	blocked, err := ctrl.Availability.GetBlockedDates(roomID, c.Query("start"), c.Query("end"))
	if err != nil {
		if errors.Is(err, utils.ErrInvalidDateFormat) {
			utils.JSONError(c, http.StatusBadRequest, "invalid date format")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load blocked dates")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, blocked)
}

// BlockDates handles POST /api/rooms/:id/blocked-dates
func (ctrl *AvailabilityController) BlockDates(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	var payload BlockDatesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	dates := payload.Dates
	if payload.Date != "" {
		dates = append(dates, payload.Date)
	}
	if len(dates) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "date or dates is required")
		return
	}

	blocked := ctrl.Availability.BlockDates(roomID, dates, payload.BlockType, payload.Reason, payload.CreatedBy)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"requested": len(dates), "blocked": blocked})
}

// UnblockDates handles DELETE /api/rooms/:id/blocked-dates
func (ctrl *AvailabilityController) UnblockDates(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	var payload UnblockDatesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	dates := payload.Dates
	if payload.Date != "" {
		dates = append(dates, payload.Date)
	}
	if len(dates) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "date or dates is required")
		return
	}

	removed := ctrl.Availability.UnblockDates(roomID, dates)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"requested": len(dates), "removed": removed})
}
