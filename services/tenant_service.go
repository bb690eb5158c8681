package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

type TenantService struct {
	db *gorm.DB
}

func NewTenantService(db *gorm.DB) *TenantService {
	return &TenantService{db: db}
}

// CheckIn stores the tenant and then marks the tenant's room occupied. The two
// writes are independent: when the room update fails the tenant stays stored
// and the failure is only logged.
func (s *TenantService) CheckIn(ctx context.Context, tenant *models.Tenant) error {
	db := s.db.WithContext(ctx)

	if err := db.Create(tenant).Error; err != nil {
		return err
	}

	res := db.Model(&models.Room{}).
		Where("id = ?", tenant.RoomID).
		Update("status", models.RoomOccupied)
	switch {
	case res.Error != nil:
		utils.ErrorLogger.WithFields(logrus.Fields{
			"tenant_id": tenant.ID,
			"room_id":   tenant.RoomID,
		}).Errorf("tenant stored but room status update failed: %v", res.Error)
	case res.RowsAffected == 0:
		utils.InfoLogger.WithFields(logrus.Fields{
			"tenant_id": tenant.ID,
			"room_id":   tenant.RoomID,
		}).Warn("tenant references unknown room")
	default:
		utils.InfoLogger.Printf("Room %s occupied by tenant %s", tenant.RoomID, tenant.ID)
	}
	return nil
}
