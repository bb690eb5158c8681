package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

// PaymentService reviews reported rent payments.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// Approve marks the payment approved and then the paying tenant paid. If the
// payment cannot be read back after the update, the tenant write is skipped.
func (s *PaymentService) Approve(ctx context.Context, id string) (*models.Payment, error) {
	if err := s.review(ctx, id, models.PaymentApproved); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	var payment models.Payment
	if err := db.Where("id = ?", id).Limit(1).Find(&payment).Error; err != nil || payment.ID == "" {
		utils.ErrorLogger.WithField("payment_id", id).Error("approved payment could not be read back, tenant not updated")
		return &models.Payment{ID: id, Status: models.PaymentApproved}, nil
	}

	err := db.Model(&models.Tenant{}).
		Where("id = ?", payment.TenantID).
		Update("payment_status", models.TenantPaid).Error
	if err != nil {
		utils.ErrorLogger.WithFields(logrus.Fields{
			"payment_id": payment.ID,
			"tenant_id":  payment.TenantID,
		}).Errorf("payment approved but tenant update failed: %v", err)
	}

	utils.InfoLogger.Printf("Payment %s approved for tenant %s", payment.ID, payment.TenantID)
	return &payment, nil
}

// Reject marks the payment rejected. The tenant is left untouched.
func (s *PaymentService) Reject(ctx context.Context, id string) (*models.Payment, error) {
	if err := s.review(ctx, id, models.PaymentRejected); err != nil {
		return nil, err
	}

	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Payment %s rejected", payment.ID)
	return &payment, nil
}

func (s *PaymentService) review(ctx context.Context, id, status string) error {
	db := s.db.WithContext(ctx)

	var payment models.Payment
	if err := db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if payment.Status != models.PaymentPending {
		return ErrPaymentReviewed
	}

	res := db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, models.PaymentPending).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPaymentReviewed
	}
	return nil
}
