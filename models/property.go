package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Property struct {
	ID          string                      `json:"id" gorm:"type:varchar(36);primaryKey"`
	OwnerID     string                      `json:"owner_id" gorm:"type:varchar(36);index;not null"`
	Name        string                      `json:"name" gorm:"type:varchar(255);not null"`
	Address     string                      `json:"address" gorm:"type:text;not null"`
	TotalRooms  int                         `json:"total_rooms"`
	Description *string                     `json:"description" gorm:"type:text"`
	Facilities  datatypes.JSONSlice[string] `json:"facilities"`
	CreatedAt   time.Time                   `json:"created_at"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
