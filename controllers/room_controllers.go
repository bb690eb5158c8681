package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

type createRoomRequest struct {
	PropertyID string   `json:"property_id" binding:"required"`
	RoomNumber string   `json:"room_number" binding:"required"`
	RoomType   string   `json:"room_type" binding:"required"`
	Price      *float64 `json:"price" binding:"required,gte=0"`
	Facilities []string `json:"facilities"`
	Photos     []string `json:"photos"`
}

type updateRoomRequest struct {
	RoomNumber *string   `json:"room_number" binding:"omitempty,min=1"`
	RoomType   *string   `json:"room_type" binding:"omitempty,min=1"`
	Price      *float64  `json:"price" binding:"omitempty,gte=0"`
	Status     *string   `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
	Facilities *[]string `json:"facilities"`
	Photos     *[]string `json:"photos"`
}

func (r updateRoomRequest) changes() changeSet {
	cs := changeSet{}
	setIf(cs, "room_number", r.RoomNumber)
	setIf(cs, "room_type", r.RoomType)
	setIf(cs, "price", r.Price)
	setIf(cs, "status", r.Status)
	if r.Facilities != nil {
		cs["facilities"] = models.StringList(*r.Facilities)
	}
	if r.Photos != nil {
		cs["photos"] = models.StringList(*r.Photos)
	}
	return cs
}

// CreateRoom -> kamar baru selalu berstatus available
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	room := models.Room{
		PropertyID: req.PropertyID,
		RoomNumber: req.RoomNumber,
		RoomType:   req.RoomType,
		Price:      *req.Price,
		Status:     models.RoomAvailable,
		Facilities: models.StringList(req.Facilities),
		Photos:     models.StringList(req.Photos),
	}
	if err := rc.DB.WithContext(c.Request.Context()).Create(&room).Error; err != nil {
		respondStoreError(c, err, "room")
		return
	}

	utils.InfoLogger.Printf("New room created: %s (property=%s)", room.RoomNumber, room.PropertyID)
	utils.RespondJSON(c, http.StatusCreated, "Room created", room)
}

// GetAllRooms supports property_id and status filters.
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	q := rc.DB.WithContext(c.Request.Context())
	if propertyID := c.Query("property_id"); propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	rooms := []models.Room{}
	if err := q.Limit(defaultPageSize).Find(&rooms).Error; err != nil {
		respondStoreError(c, err, "room")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of rooms", rooms)
}

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	var room models.Room
	if err := rc.DB.WithContext(c.Request.Context()).First(&room, "id = ?", c.Param("room_id")).Error; err != nil {
		respondStoreError(c, err, "room")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room detail", room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	var req updateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	cs := req.changes()
	if len(cs) == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrNothingToApply)
		return
	}

	db := rc.DB.WithContext(c.Request.Context())
	id := c.Param("room_id")
	var room models.Room
	if err := db.First(&room, "id = ?", id).Error; err != nil {
		respondStoreError(c, err, "room")
		return
	}
	if err := db.Model(&models.Room{}).Where("id = ?", id).Updates(map[string]interface{}(cs)).Error; err != nil {
		respondStoreError(c, err, "room")
		return
	}
	if err := db.First(&room, "id = ?", id).Error; err != nil {
		respondStoreError(c, err, "room")
		return
	}

	utils.InfoLogger.Printf("Room %s updated", room.ID)
	utils.RespondJSON(c, http.StatusOK, "Room updated", room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id := c.Param("room_id")
	res := rc.DB.WithContext(c.Request.Context()).Where("id = ?", id).Delete(&models.Room{})
	if res.Error != nil {
		respondStoreError(c, res.Error, "room")
		return
	}
	if res.RowsAffected == 0 {
		respondStoreError(c, gorm.ErrRecordNotFound, "room")
		return
	}

	utils.InfoLogger.Printf("Room %s deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Room deleted", gin.H{"id": id})
}
