package models

import (
	"time"

	"github.com/mossleaf/homeops/pkg/types"
)

// InventoryItem is one line of the shared shopping/supplies list. Checked
// always-needed items stay on the list; checked normal items are cleared off.
type InventoryItem struct {
	ID           string                  `gorm:"column:id;type:uuid;primary_key" json:"id"`
	HouseholdID  string                  `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	CreatedBy    *string                 `gorm:"column:created_by;type:uuid;default:null" json:"created_by"`
	Name         string                  `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Quantity     *string                 `gorm:"column:quantity;type:varchar(64);default:null" json:"quantity"`
	Category     types.InventoryCategory `gorm:"column:category;type:varchar(32);not null" json:"category"`
	AlwaysNeeded bool                    `gorm:"column:always_needed;not null;default:false" json:"always_needed"`
	Checked      bool                    `gorm:"column:checked;not null;default:false" json:"checked"`
	Notes        *string                 `gorm:"column:notes;type:text;default:null" json:"notes"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
