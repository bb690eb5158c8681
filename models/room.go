package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomMaintenance = "maintenance"
)

type Room struct {
	ID         string                      `json:"id" gorm:"type:varchar(36);primaryKey"`
	PropertyID string                      `json:"property_id" gorm:"type:varchar(36);index;not null"`
	RoomNumber string                      `json:"room_number" gorm:"type:varchar(50);not null"`
	RoomType   string                      `json:"room_type" gorm:"type:varchar(50);not null"`
	Price      float64                     `json:"price" gorm:"type:decimal(12,2);not null"`
	Status     string                      `json:"status" gorm:"type:varchar(20);not null;default:'available'"`
	Facilities datatypes.JSONSlice[string] `json:"facilities"`
	Photos     datatypes.JSONSlice[string] `json:"photos"`
	CreatedAt  time.Time                   `json:"created_at"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	assignID(&r.ID)
	return nil
}
