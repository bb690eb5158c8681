package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/services"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

type UtilityMeterController struct {
	DB *gorm.DB
}

func NewUtilityMeterController(db *gorm.DB) *UtilityMeterController {
	return &UtilityMeterController{DB: db}
}

type createUtilityMeterRequest struct {
	RoomID          string    `json:"room_id" binding:"required"`
	PropertyID      string    `json:"property_id" binding:"required"`
	MeterType       string    `json:"meter_type" binding:"required"`
	ReadingDate     time.Time `json:"reading_date" binding:"required"`
	CurrentReading  *float64  `json:"current_reading" binding:"required"`
	PreviousReading float64   `json:"previous_reading"`
	CostPerUnit     *float64  `json:"cost_per_unit" binding:"required"`
	Notes           *string   `json:"notes"`
}

// CreateUtilityMeter stores a reading together with its billed cost. The cost
// is fixed at creation.
func (uc *UtilityMeterController) CreateUtilityMeter(c *gin.Context) {
	var req createUtilityMeterRequest
	if !bindJSON(c, &req) {
		return
	}

	meter := models.UtilityMeter{
		RoomID:          req.RoomID,
		PropertyID:      req.PropertyID,
		MeterType:       req.MeterType,
		ReadingDate:     req.ReadingDate,
		CurrentReading:  *req.CurrentReading,
		PreviousReading: req.PreviousReading,
		CostPerUnit:     *req.CostPerUnit,
		TotalCost:       services.UtilityCost(*req.CurrentReading, req.PreviousReading, *req.CostPerUnit),
		Notes:           req.Notes,
	}
	if err := uc.DB.WithContext(c.Request.Context()).Create(&meter).Error; err != nil {
		respondStoreError(c, err, "utility meter")
		return
	}

	utils.InfoLogger.Printf("Meter reading %s stored for room %s (cost=%.2f)", meter.ID, meter.RoomID, meter.TotalCost)
	utils.RespondJSON(c, http.StatusCreated, "Utility meter created", meter)
}

func (uc *UtilityMeterController) GetUtilityMeters(c *gin.Context) {
	q := uc.DB.WithContext(c.Request.Context())
	if roomID := c.Query("room_id"); roomID != "" {
		q = q.Where("room_id = ?", roomID)
	}
	if propertyID := c.Query("property_id"); propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}

	meters := []models.UtilityMeter{}
	if err := q.Limit(defaultPageSize).Find(&meters).Error; err != nil {
		respondStoreError(c, err, "utility meter")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of utility meters", meters)
}
