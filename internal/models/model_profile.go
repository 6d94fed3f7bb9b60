package models

import (
	"time"

	"github.com/mossleaf/homeops/pkg/types"
)

// Profile is a household member. Its ID equals the hosted auth service's user
// id, so one auth user maps to at most one profile.
type Profile struct {
	ID          string     `gorm:"column:id;type:uuid;primary_key" json:"id"`
	HouseholdID string     `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	DisplayName string     `gorm:"column:display_name;type:varchar(128);not null" json:"display_name"`
	Role        types.Role `gorm:"column:role;type:varchar(16);not null" json:"role"`
	AvatarColor string     `gorm:"column:avatar_color;type:varchar(16);not null" json:"avatar_color"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == types.RoleAdmin
}
