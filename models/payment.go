package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentRejected = "rejected"
)

// Payment is a rent payment reported for a tenant. Approval and rejection are
// terminal.
type Payment struct {
	ID            string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	TenantID      string    `json:"tenant_id" gorm:"type:varchar(36);index;not null"`
	PropertyID    string    `json:"property_id" gorm:"type:varchar(36);index;not null"`
	RoomID        string    `json:"room_id" gorm:"type:varchar(36);not null"`
	Amount        float64   `json:"amount" gorm:"type:decimal(12,2);not null"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `json:"payment_method" gorm:"type:varchar(30);default:'transfer'"`
	Status        string    `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ProofURL      *string   `json:"proof_url" gorm:"type:varchar(500)"`
	Notes         *string   `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
