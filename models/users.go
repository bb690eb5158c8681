package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleOwner     = "owner"
	RolePengelola = "pengelola"

	SubscriptionTrial = "trial"
)

// DefaultPengelolaPermissions is granted when an owner invites staff without
// naming any permission.
var DefaultPengelolaPermissions = []string{"manage_rooms", "manage_tenants"}

type User struct {
	ID                 string                      `json:"id" gorm:"type:varchar(36);primaryKey"`
	Email              string                      `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password           string                      `json:"-" gorm:"type:varchar(255);not null"`
	FullName           string                      `json:"full_name" gorm:"type:varchar(255);not null"`
	Phone              string                      `json:"phone" gorm:"type:varchar(50)"`
	Role               string                      `json:"role" gorm:"type:varchar(20);not null"`
	OwnerID            *string                     `json:"owner_id" gorm:"type:varchar(36);index"`
	PropertyID         *string                     `json:"property_id,omitempty" gorm:"type:varchar(36)"`
	IsOwner            bool                        `json:"is_owner"`
	SubscriptionStatus string                      `json:"subscription_status" gorm:"type:varchar(20)"`
	TrialEndDate       *time.Time                  `json:"trial_end_date"`
	Permissions        datatypes.JSONSlice[string] `json:"permissions"`
	CreatedAt          time.Time                   `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	assignID(&u.ID)
	if u.Permissions == nil {
		u.Permissions = datatypes.JSONSlice[string]{}
	}
	return nil
}
