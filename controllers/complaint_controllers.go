package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

type ComplaintController struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewComplaintController(db *gorm.DB) *ComplaintController {
	return &ComplaintController{DB: db, now: time.Now}
}

type createComplaintRequest struct {
	TenantID    string   `json:"tenant_id" binding:"required"`
	PropertyID  string   `json:"property_id" binding:"required"`
	RoomID      string   `json:"room_id" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Photos      []string `json:"photos"`
}

type complaintStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required,oneof=open in_progress resolved closed"`
}

func (cc *ComplaintController) CreateComplaint(c *gin.Context) {
	var req createComplaintRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Priority == "" {
		req.Priority = models.DefaultComplaintPriority
	}

	now := cc.now().UTC()
	complaint := models.Complaint{
		TenantID:    req.TenantID,
		PropertyID:  req.PropertyID,
		RoomID:      req.RoomID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.ComplaintOpen,
		Priority:    req.Priority,
		Photos:      models.StringList(req.Photos),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := cc.DB.WithContext(c.Request.Context()).Create(&complaint).Error; err != nil {
		respondStoreError(c, err, "complaint")
		return
	}

	utils.InfoLogger.Printf("Complaint %s opened for room %s", complaint.ID, complaint.RoomID)
	utils.RespondJSON(c, http.StatusCreated, "Complaint created", complaint)
}

// GetComplaints supports property_id and status filters.
func (cc *ComplaintController) GetComplaints(c *gin.Context) {
	q := cc.DB.WithContext(c.Request.Context())
	if propertyID := c.Query("property_id"); propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	complaints := []models.Complaint{}
	if err := q.Limit(defaultPageSize).Find(&complaints).Error; err != nil {
		respondStoreError(c, err, "complaint")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of complaints", complaints)
}

// UpdateComplaintStatus reads the status from the JSON body or, when the body
// is empty, from the status query parameter.
func (cc *ComplaintController) UpdateComplaintStatus(c *gin.Context) {
	var req complaintStatusRequest
	var err error
	if c.Request.ContentLength > 0 {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	db := cc.DB.WithContext(c.Request.Context())
	id := c.Param("complaint_id")
	var complaint models.Complaint
	if err := db.First(&complaint, "id = ?", id).Error; err != nil {
		respondStoreError(c, err, "complaint")
		return
	}

	err = db.Model(&models.Complaint{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     req.Status,
			"updated_at": cc.now().UTC(),
		}).Error
	if err != nil {
		respondStoreError(c, err, "complaint")
		return
	}
	if err := db.First(&complaint, "id = ?", id).Error; err != nil {
		respondStoreError(c, err, "complaint")
		return
	}

	utils.InfoLogger.Printf("Complaint %s status changed to %s", complaint.ID, complaint.Status)
	utils.RespondJSON(c, http.StatusOK, "Complaint status updated", complaint)
}
