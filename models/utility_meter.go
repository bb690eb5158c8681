package models

import (
	"time"

	"gorm.io/gorm"
)

type UtilityMeter struct {
	ID              string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	RoomID          string    `json:"room_id" gorm:"type:varchar(36);index;not null"`
	PropertyID      string    `json:"property_id" gorm:"type:varchar(36);index;not null"`
	MeterType       string    `json:"meter_type" gorm:"type:varchar(30);not null"`
	ReadingDate     time.Time `json:"reading_date"`
	CurrentReading  float64   `json:"current_reading"`
	PreviousReading float64   `json:"previous_reading"`
	CostPerUnit     float64   `json:"cost_per_unit"`
	TotalCost       float64   `json:"total_cost"`
	Notes           *string   `json:"notes" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
}

func (m *UtilityMeter) BeforeCreate(tx *gorm.DB) error {
	assignID(&m.ID)
	return nil
}
