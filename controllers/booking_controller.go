// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-site-backend/services"
	"hotel-site-backend/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
	Validator  *services.BookingValidator
}

func NewBookingController(svc *services.BookingService, validator *services.BookingValidator) *BookingController {
	return &BookingController{BookingSvc: svc, Validator: validator}
}

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return 0, false
	}
	return uint(id), true
}

// CreateBooking handles POST /api/bookings. Rejections come back as 422
// with the structured validation outcome so the frontend can highlight
// fields or show the conflict summary.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var data services.BookingData
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	booking, outcome, err := ctrl.BookingSvc.CreateBooking(data)
	if err != nil {
		log.Printf("CreateBooking error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		return
	}
	if booking == nil {
		utils.JSONInvalid(c, http.StatusUnprocessableEntity, outcome)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// ValidateBooking handles POST /api/bookings/validate, a dry run of the
// full validation pipeline without persisting anything.
func (ctrl *BookingController) ValidateBooking(c *gin.Context) {
	var data services.BookingData
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	var excludeID uint
	if raw := c.Query("exclude_booking_id"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			excludeID = uint(v)
		}
	}

	outcome := ctrl.Validator.ValidateBookingWithAvailability(data, excludeID)
	utils.JSONSuccess(c, http.StatusOK, outcome)
}

// GetBookings handles GET /api/bookings?status=
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.ListBookings(c.Query("status"))
	if err != nil {
		log.Printf("GetBookings error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/:id
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetBooking(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.CancelBooking(id); err != nil {
		ctrl.respondTransitionError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "cancelled"})
}

func (ctrl *BookingController) CheckInBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.CheckInBooking(id); err != nil {
		ctrl.respondTransitionError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "checked-in"})
}

func (ctrl *BookingController) CheckOutBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.CheckOutBooking(id); err != nil {
		ctrl.respondTransitionError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "checked-out"})
}

func (ctrl *BookingController) respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found")
	case errors.Is(err, services.ErrBookingAlreadyDeparted):
		utils.JSONError(c, http.StatusConflict, "booking already checked out")
	case errors.Is(err, services.ErrBookingNotCheckedIn),
		errors.Is(err, services.ErrBookingNotActive):
		utils.JSONError(c, http.StatusConflict, "booking is not in a valid state for this action")
	default:
		log.Printf("booking transition error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
