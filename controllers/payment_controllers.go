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

type PaymentController struct {
	DB       *gorm.DB
	Payments *services.PaymentService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Payments: services.NewPaymentService(db)}
}

type createPaymentRequest struct {
	TenantID      string    `json:"tenant_id" binding:"required"`
	PropertyID    string    `json:"property_id" binding:"required"`
	RoomID        string    `json:"room_id" binding:"required"`
	Amount        float64   `json:"amount" binding:"required,gt=0"`
	PaymentDate   time.Time `json:"payment_date" binding:"required"`
	PaymentMethod string    `json:"payment_method"`
	ProofURL      *string   `json:"proof_url" binding:"omitempty,url"`
	Notes         *string   `json:"notes"`
}

// CreatePayment records a payment waiting for review.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "transfer"
	}

	payment := models.Payment{
		TenantID:      req.TenantID,
		PropertyID:    req.PropertyID,
		RoomID:        req.RoomID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		Status:        models.PaymentPending,
		ProofURL:      req.ProofURL,
		Notes:         req.Notes,
	}
	if err := pc.DB.WithContext(c.Request.Context()).Create(&payment).Error; err != nil {
		respondStoreError(c, err, "payment")
		return
	}

	utils.InfoLogger.Printf("Payment %s recorded for tenant %s", payment.ID, payment.TenantID)
	utils.RespondJSON(c, http.StatusCreated, "Payment created", payment)
}

func (pc *PaymentController) GetPayments(c *gin.Context) {
	q := pc.DB.WithContext(c.Request.Context())
	if propertyID := c.Query("property_id"); propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	payments := []models.Payment{}
	if err := q.Limit(defaultPageSize).Find(&payments).Error; err != nil {
		respondStoreError(c, err, "payment")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of payments", payments)
}

// ApprovePayment also marks the paying tenant as paid.
func (pc *PaymentController) ApprovePayment(c *gin.Context) {
	payment, err := pc.Payments.Approve(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		respondStoreError(c, err, "payment")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment approved successfully", payment)
}

func (pc *PaymentController) RejectPayment(c *gin.Context) {
	payment, err := pc.Payments.Reject(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		respondStoreError(c, err, "payment")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment rejected", payment)
}
