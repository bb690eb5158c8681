package models

import (
	"time"

	"gorm.io/gorm"
)

const DefaultProductCategory = "makanan"

type CanteenProduct struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	PropertyID  string    `json:"property_id" gorm:"type:varchar(36);index;not null"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Price       float64   `json:"price" gorm:"type:decimal(12,2);not null"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category" gorm:"type:varchar(50)"`
	PhotoURL    *string   `json:"photo_url" gorm:"type:varchar(500)"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *CanteenProduct) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

// CanteenTransaction records one sale of a single product. It is never
// modified after creation.
type CanteenTransaction struct {
	ID              string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	PropertyID      string    `json:"property_id" gorm:"type:varchar(36);index;not null"`
	ProductID       string    `json:"product_id" gorm:"type:varchar(36);index;not null"`
	TenantID        *string   `json:"tenant_id" gorm:"type:varchar(36)"`
	Quantity        int       `json:"quantity"`
	TotalPrice      float64   `json:"total_price" gorm:"type:decimal(12,2)"`
	TransactionDate time.Time `json:"transaction_date"`
	Notes           *string   `json:"notes" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
}

func (t *CanteenTransaction) BeforeCreate(tx *gorm.DB) error {
	assignID(&t.ID)
	return nil
}
