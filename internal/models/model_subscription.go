package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/mossleaf/homeops/pkg/types"
)

// Subscription is a recurring household service (streaming, meal kit, ...).
// NextRenewalDate drives renewal alerts; nil means no alerting.
type Subscription struct {
	ID              string                     `gorm:"column:id;type:uuid;primary_key" json:"id"`
	HouseholdID     string                     `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	CreatedBy       *string                    `gorm:"column:created_by;type:uuid;default:null" json:"created_by"`
	Name            string                     `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Category        types.SubscriptionCategory `gorm:"column:category;type:varchar(32);not null" json:"category"`
	Cost            *float64                   `gorm:"column:cost;type:numeric(12,2);default:null" json:"cost"`
	BillingCycle    types.BillingCycle         `gorm:"column:billing_cycle;type:varchar(16);not null" json:"billing_cycle"`
	NextRenewalDate *datatypes.Date            `gorm:"column:next_renewal_date;type:date;default:null" json:"next_renewal_date"`
	AutoRenews      bool                       `gorm:"column:auto_renews;not null;default:true" json:"auto_renews"`
	Notes           *string                    `gorm:"column:notes;type:text;default:null" json:"notes"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
