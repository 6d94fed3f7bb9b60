package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/mossleaf/homeops/pkg/types"
)

// Order is an expected delivery (grocery box, recurring supplies). It feeds
// the dashboard's deliveries count only; parcels tracked through the Parcel
// API are a separate concept.
type Order struct {
	ID               string                `gorm:"column:id;type:uuid;primary_key" json:"id"`
	HouseholdID      string                `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	CreatedBy        *string               `gorm:"column:created_by;type:uuid;default:null" json:"created_by"`
	Name             string                `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Type             types.OrderType       `gorm:"column:type;type:varchar(16);not null" json:"type"`
	NextDeliveryDate *datatypes.Date       `gorm:"column:next_delivery_date;type:date;default:null" json:"next_delivery_date"`
	Frequency        *types.OrderFrequency `gorm:"column:frequency;type:varchar(16);default:null" json:"frequency"`
	Status           types.OrderStatus     `gorm:"column:status;type:varchar(16);not null" json:"status"`
	Notes            *string               `gorm:"column:notes;type:text;default:null" json:"notes"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
