package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/kostify/middlewares"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

// PropertyController serves properties. Every query is scoped to the
// authenticated owner.
type PropertyController struct {
	DB *gorm.DB
}

func NewPropertyController(db *gorm.DB) *PropertyController {
	return &PropertyController{DB: db}
}

type createPropertyRequest struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	TotalRooms  int      `json:"total_rooms" binding:"min=0"`
	Description *string  `json:"description"`
	Facilities  []string `json:"facilities"`
}

type updatePropertyRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1"`
	Address     *string   `json:"address" binding:"omitempty,min=1"`
	TotalRooms  *int      `json:"total_rooms" binding:"omitempty,min=0"`
	Description *string   `json:"description"`
	Facilities  *[]string `json:"facilities"`
}

func (r updatePropertyRequest) changes() changeSet {
	cs := changeSet{}
	setIf(cs, "name", r.Name)
	setIf(cs, "address", r.Address)
	setIf(cs, "total_rooms", r.TotalRooms)
	setIf(cs, "description", r.Description)
	if r.Facilities != nil {
		cs["facilities"] = models.StringList(*r.Facilities)
	}
	return cs
}

func (pc *PropertyController) owned(c *gin.Context) *gorm.DB {
	return pc.DB.WithContext(c.Request.Context()).
		Where("owner_id = ?", middlewares.CurrentUser(c).ID)
}

func (pc *PropertyController) CreateProperty(c *gin.Context) {
	var req createPropertyRequest
	if !bindJSON(c, &req) {
		return
	}

	property := models.Property{
		OwnerID:     middlewares.CurrentUser(c).ID,
		Name:        req.Name,
		Address:     req.Address,
		TotalRooms:  req.TotalRooms,
		Description: req.Description,
		Facilities:  models.StringList(req.Facilities),
	}
	if err := pc.DB.WithContext(c.Request.Context()).Create(&property).Error; err != nil {
		respondStoreError(c, err, "property")
		return
	}

	utils.InfoLogger.Printf("New property created: %s (owner=%s)", property.Name, property.OwnerID)
	utils.RespondJSON(c, http.StatusCreated, "Property created", property)
}

func (pc *PropertyController) GetAllProperties(c *gin.Context) {
	properties := []models.Property{}
	if err := pc.owned(c).Limit(smallPageSize).Find(&properties).Error; err != nil {
		respondStoreError(c, err, "property")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of properties", properties)
}

func (pc *PropertyController) GetPropertyByID(c *gin.Context) {
	var property models.Property
	if err := pc.owned(c).First(&property, "id = ?", c.Param("property_id")).Error; err != nil {
		respondStoreError(c, err, "property")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Property detail", property)
}

func (pc *PropertyController) UpdateProperty(c *gin.Context) {
	var req updatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}
	cs := req.changes()
	if len(cs) == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrNothingToApply)
		return
	}

	id := c.Param("property_id")
	var property models.Property
	if err := pc.owned(c).First(&property, "id = ?", id).Error; err != nil {
		respondStoreError(c, err, "property")
		return
	}
	if err := pc.owned(c).Model(&models.Property{}).Where("id = ?", id).Updates(map[string]interface{}(cs)).Error; err != nil {
		respondStoreError(c, err, "property")
		return
	}
	if err := pc.owned(c).First(&property, "id = ?", id).Error; err != nil {
		respondStoreError(c, err, "property")
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Property updated", property)
}

func (pc *PropertyController) DeleteProperty(c *gin.Context) {
	id := c.Param("property_id")
	res := pc.owned(c).Where("id = ?", id).Delete(&models.Property{})
	if res.Error != nil {
		respondStoreError(c, res.Error, "property")
		return
	}
	if res.RowsAffected == 0 {
		respondStoreError(c, gorm.ErrRecordNotFound, "property")
		return
	}

	utils.InfoLogger.Printf("Property %s deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Property deleted", gin.H{"id": id})
}
