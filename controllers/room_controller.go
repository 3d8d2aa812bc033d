// controllers/room_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-site-backend/models"
	"hotel-site-backend/services"
	"hotel-site-backend/utils"
)

type RoomController struct {
	RoomTypes *services.RoomTypeService
}

func NewRoomController(svc *services.RoomTypeService) *RoomController {
	return &RoomController{RoomTypes: svc}
}

// GetRooms handles GET /api/rooms, the public rooms page (active only).
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomTypes.GetActive()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetAllRooms handles GET /api/admin/rooms, every room type for the admin view.
func (ctrl *RoomController) GetAllRooms(c *gin.Context) {
	rooms, err := ctrl.RoomTypes.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	room, err := ctrl.RoomTypes.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var room models.RoomType
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if room.RoomsAvailable > room.TotalRooms {
		utils.JSONError(c, http.StatusBadRequest, "rooms_available cannot exceed total_rooms")
		return
	}
	if err := ctrl.RoomTypes.Create(&room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	var room models.RoomType
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	room.ID = uint(id)
	if room.RoomsAvailable > room.TotalRooms {
		utils.JSONError(c, http.StatusBadRequest, "rooms_available cannot exceed total_rooms")
		return
	}
	if err := ctrl.RoomTypes.Update(&room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	if err := ctrl.RoomTypes.Delete(uint(id)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
