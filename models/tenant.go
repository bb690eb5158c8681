package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TenantUnpaid  = "unpaid"
	TenantPaid    = "paid"
	TenantPartial = "partial"

	DepositUnpaid   = "unpaid"
	DepositPaid     = "paid"
	DepositRefunded = "refunded"
)

// Tenant is a resident occupying a room. It is not a login account.
type Tenant struct {
	ID            string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	PropertyID    string     `json:"property_id" gorm:"type:varchar(36);index;not null"`
	RoomID        string     `json:"room_id" gorm:"type:varchar(36);index;not null"`
	FullName      string     `json:"full_name" gorm:"type:varchar(255);not null"`
	Email         string     `json:"email" gorm:"type:varchar(255)"`
	Phone         string     `json:"phone" gorm:"type:varchar(50)"`
	IDCardNumber  string     `json:"id_card_number" gorm:"type:varchar(100)"`
	CheckInDate   time.Time  `json:"check_in_date"`
	CheckOutDate  *time.Time `json:"check_out_date"`
	PaymentStatus string     `json:"payment_status" gorm:"type:varchar(20);not null;default:'unpaid'"`
	DepositAmount float64    `json:"deposit_amount" gorm:"type:decimal(12,2)"`
	DepositStatus string     `json:"deposit_status" gorm:"type:varchar(20);not null;default:'unpaid'"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	assignID(&t.ID)
	return nil
}
