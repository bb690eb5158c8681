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

type TenantController struct {
	DB      *gorm.DB
	Tenants *services.TenantService
}

func NewTenantController(db *gorm.DB) *TenantController {
	return &TenantController{DB: db, Tenants: services.NewTenantService(db)}
}

type createTenantRequest struct {
	PropertyID    string     `json:"property_id" binding:"required"`
	RoomID        string     `json:"room_id" binding:"required"`
	FullName      string     `json:"full_name" binding:"required"`
	Email         string     `json:"email" binding:"required,email"`
	Phone         string     `json:"phone" binding:"required"`
	IDCardNumber  string     `json:"id_card_number" binding:"required"`
	CheckInDate   time.Time  `json:"check_in_date" binding:"required"`
	CheckOutDate  *time.Time `json:"check_out_date"`
	DepositAmount float64    `json:"deposit_amount" binding:"gte=0"`
}

type updateTenantRequest struct {
	FullName      *string    `json:"full_name" binding:"omitempty,min=1"`
	Email         *string    `json:"email" binding:"omitempty,email"`
	Phone         *string    `json:"phone"`
	IDCardNumber  *string    `json:"id_card_number"`
	CheckInDate   *time.Time `json:"check_in_date"`
	CheckOutDate  *time.Time `json:"check_out_date"`
	PaymentStatus *string    `json:"payment_status" binding:"omitempty,oneof=unpaid paid partial"`
	DepositAmount *float64   `json:"deposit_amount" binding:"omitempty,gte=0"`
	DepositStatus *string    `json:"deposit_status" binding:"omitempty,oneof=unpaid paid refunded"`
}

func (r updateTenantRequest) changes() changeSet {
	cs := changeSet{}
	setIf(cs, "full_name", r.FullName)
	setIf(cs, "email", r.Email)
	setIf(cs, "phone", r.Phone)
	setIf(cs, "id_card_number", r.IDCardNumber)
	setIf(cs, "check_in_date", r.CheckInDate)
	setIf(cs, "check_out_date", r.CheckOutDate)
	setIf(cs, "payment_status", r.PaymentStatus)
	setIf(cs, "deposit_amount", r.DepositAmount)
	setIf(cs, "deposit_status", r.DepositStatus)
	return cs
}

// CreateTenant checks the tenant in; the referenced room becomes occupied.
func (tc *TenantController) CreateTenant(c *gin.Context) {
	var req createTenantRequest
	if !bindJSON(c, &req) {
		return
	}

	tenant := models.Tenant{
		PropertyID:    req.PropertyID,
		RoomID:        req.RoomID,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		IDCardNumber:  req.IDCardNumber,
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		PaymentStatus: models.TenantUnpaid,
		DepositAmount: req.DepositAmount,
		DepositStatus: models.DepositUnpaid,
	}
	if err := tc.Tenants.CheckIn(c.Request.Context(), &tenant); err != nil {
		respondStoreError(c, err, "tenant")
		return
	}

	utils.InfoLogger.Printf("New tenant checked in: %s (room=%s)", tenant.FullName, tenant.RoomID)
	utils.RespondJSON(c, http.StatusCreated, "Tenant created", tenant)
}

func (tc *TenantController) GetAllTenants(c *gin.Context) {
	q := tc.DB.WithContext(c.Request.Context())
	if propertyID := c.Query("property_id"); propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}

	tenants := []models.Tenant{}
	if err := q.Limit(defaultPageSize).Find(&tenants).Error; err != nil {
		respondStoreError(c, err, "tenant")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tenants", tenants)
}

func (tc *TenantController) GetTenantByID(c *gin.Context) {
	var tenant models.Tenant
	if err := tc.DB.WithContext(c.Request.Context()).First(&tenant, "id = ?", c.Param("tenant_id")).Error; err != nil {
		respondStoreError(c, err, "tenant")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Tenant detail", tenant)
}

func (tc *TenantController) UpdateTenant(c *gin.Context) {
	var req updateTenantRequest
	if !bindJSON(c, &req) {
		return
	}
	cs := req.changes()
	if len(cs) == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrNothingToApply)
		return
	}

	db := tc.DB.WithContext(c.Request.Context())
	id := c.Param("tenant_id")
	var tenant models.Tenant
	if err := db.First(&tenant, "id = ?", id).Error; err != nil {
		respondStoreError(c, err, "tenant")
		return
	}
	if err := db.Model(&models.Tenant{}).Where("id = ?", id).Updates(map[string]interface{}(cs)).Error; err != nil {
		respondStoreError(c, err, "tenant")
		return
	}
	if err := db.First(&tenant, "id = ?", id).Error; err != nil {
		respondStoreError(c, err, "tenant")
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Tenant updated", tenant)
}
