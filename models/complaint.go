package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ComplaintOpen       = "open"
	ComplaintInProgress = "in_progress"
	ComplaintResolved   = "resolved"
	ComplaintClosed     = "closed"

	DefaultComplaintPriority = "medium"
)

type Complaint struct {
	ID          string                      `json:"id" gorm:"type:varchar(36);primaryKey"`
	TenantID    string                      `json:"tenant_id" gorm:"type:varchar(36);index;not null"`
	PropertyID  string                      `json:"property_id" gorm:"type:varchar(36);index;not null"`
	RoomID      string                      `json:"room_id" gorm:"type:varchar(36);not null"`
	Title       string                      `json:"title" gorm:"type:varchar(255);not null"`
	Description string                      `json:"description" gorm:"type:text"`
	Status      string                      `json:"status" gorm:"type:varchar(20);not null;default:'open'"`
	Priority    string                      `json:"priority" gorm:"type:varchar(20)"`
	Photos      datatypes.JSONSlice[string] `json:"photos"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}
