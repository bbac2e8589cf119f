package controllers

import (
	"net/http"

	"tourism-backend/models"
	"tourism-backend/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Svc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Svc: svc}
}

// GET /api/hotels/:id/rooms
func (rc *RoomController) GetRooms(c *gin.Context) {
	hotelID, ok := paramID(c, "id")
	if !ok {
		return
	}
	rooms, err := rc.Svc.ListByHotel(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// POST /api/hotels/:id/rooms
func (rc *RoomController) CreateRoom(c *gin.Context) {
	hotelID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var room models.HotelRoom
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}
	if room.RoomType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Room type is required"})
		return
	}
	room.HotelID = hotelID

	if err := rc.Svc.Create(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// PUT /api/hotels/:id/rooms/:roomId
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	hotelID, ok := paramID(c, "id")
	if !ok {
		return
	}
	roomID, ok := paramID(c, "roomId")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := rc.Svc.Update(hotelID, roomID, updates); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room updated successfully"})
}

// DELETE /api/hotels/:id/rooms/:roomId
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	hotelID, ok := paramID(c, "id")
	if !ok {
		return
	}
	roomID, ok := paramID(c, "roomId")
	if !ok {
		return
	}

	if err := rc.Svc.Delete(hotelID, roomID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room deleted successfully"})
}
