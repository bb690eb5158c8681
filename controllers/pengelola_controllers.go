package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/kostify/middlewares"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

// PengelolaController manages staff accounts delegated by an owner. Routes are
// expected behind RequireRole(owner).
type PengelolaController struct {
	DB *gorm.DB
}

func NewPengelolaController(db *gorm.DB) *PengelolaController {
	return &PengelolaController{DB: db}
}

type createPengelolaRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	FullName    string   `json:"full_name" binding:"required"`
	Phone       string   `json:"phone" binding:"required"`
	Password    string   `json:"password" binding:"required,min=6"`
	PropertyID  string   `json:"property_id"`
	Permissions []string `json:"permissions"`
}

func (pc *PengelolaController) CreatePengelola(c *gin.Context) {
	owner := middlewares.CurrentUser(c)

	var req createPengelolaRequest
	if !bindJSON(c, &req) {
		return
	}

	db := pc.DB.WithContext(c.Request.Context())
	taken, err := emailTaken(db, req.Email)
	if err != nil {
		respondStoreError(c, err, "pengelola")
		return
	}
	if taken {
		utils.RespondError(c, http.StatusConflict, ErrEmailTaken)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		respondStoreError(c, err, "pengelola")
		return
	}

	permissions := req.Permissions
	if permissions == nil {
		permissions = models.DefaultPengelolaPermissions
	}
	pengelola := models.User{
		Email:              req.Email,
		Password:           hashed,
		FullName:           req.FullName,
		Phone:              req.Phone,
		Role:               models.RolePengelola,
		OwnerID:            &owner.ID,
		IsOwner:            false,
		SubscriptionStatus: models.SubscriptionTrial,
		Permissions:        models.StringList(permissions),
	}
	if req.PropertyID != "" {
		pengelola.PropertyID = &req.PropertyID
	}

	if err := db.Create(&pengelola).Error; err != nil {
		respondStoreError(c, err, "pengelola")
		return
	}

	utils.InfoLogger.Printf("Pengelola %s added by owner %s", pengelola.Email, owner.ID)
	utils.RespondJSON(c, http.StatusCreated, "Pengelola berhasil ditambahkan", pengelola)
}

func (pc *PengelolaController) GetAllPengelola(c *gin.Context) {
	owner := middlewares.CurrentUser(c)

	list := []models.User{}
	err := pc.DB.WithContext(c.Request.Context()).
		Omit("password").
		Where("owner_id = ? AND role = ?", owner.ID, models.RolePengelola).
		Limit(smallPageSize).
		Find(&list).Error
	if err != nil {
		respondStoreError(c, err, "pengelola")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of pengelola", list)
}

func (pc *PengelolaController) DeletePengelola(c *gin.Context) {
	owner := middlewares.CurrentUser(c)
	id := c.Param("pengelola_id")

	res := pc.DB.WithContext(c.Request.Context()).
		Where("id = ? AND owner_id = ?", id, owner.ID).
		Delete(&models.User{})
	if res.Error != nil {
		respondStoreError(c, res.Error, "pengelola")
		return
	}
	if res.RowsAffected == 0 {
		respondStoreError(c, gorm.ErrRecordNotFound, "pengelola")
		return
	}

	utils.InfoLogger.Printf("Pengelola %s deleted by owner %s", id, owner.ID)
	utils.RespondJSON(c, http.StatusOK, "Pengelola berhasil dihapus", gin.H{"id": id})
}
