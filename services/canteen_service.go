package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

type CanteenService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCanteenService(db *gorm.DB) *CanteenService {
	return &CanteenService{db: db, now: time.Now}
}

// SaleRequest is one product sold in a given quantity, optionally to a tenant.
type SaleRequest struct {
	PropertyID string
	ProductID  string
	TenantID   *string
	Quantity   int
	Notes      *string
}

// Sell prices the sale from the current product price, stores the
// transaction and then lowers the product stock by the sold quantity. Stock
// is not floored at zero. A failed stock update is logged and leaves the
// stored transaction in place.
func (s *CanteenService) Sell(ctx context.Context, req SaleRequest) (*models.CanteenTransaction, error) {
	db := s.db.WithContext(ctx)

	var product models.CanteenProduct
	if err := db.First(&product, "id = ?", req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := s.now().UTC()
	tx := &models.CanteenTransaction{
		PropertyID:      req.PropertyID,
		ProductID:       req.ProductID,
		TenantID:        req.TenantID,
		Quantity:        req.Quantity,
		TotalPrice:      product.Price * float64(req.Quantity),
		TransactionDate: now,
		Notes:           req.Notes,
	}
	if err := db.Create(tx).Error; err != nil {
		return nil, err
	}

	newStock := product.Stock - req.Quantity
	err := db.Model(&models.CanteenProduct{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"stock":        newStock,
			"is_available": newStock > 0,
		}).Error
	if err != nil {
		utils.ErrorLogger.WithFields(logrus.Fields{
			"transaction_id": tx.ID,
			"product_id":     product.ID,
		}).Errorf("sale stored but stock update failed: %v", err)
		return tx, nil
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"product_id": product.ID,
		"quantity":   req.Quantity,
		"stock":      newStock,
	}).Info("canteen stock decremented")
	return tx, nil
}
