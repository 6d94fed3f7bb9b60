package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/mossleaf/homeops/pkg/types"
)

// Document is a stored reference (warranty, lease, manual), optionally with an
// expiry date that drives the 60-day expiry warning.
type Document struct {
	ID             string             `gorm:"column:id;type:uuid;primary_key" json:"id"`
	HouseholdID    string             `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	CreatedBy      *string            `gorm:"column:created_by;type:uuid;default:null" json:"created_by"`
	Name           string             `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Type           types.DocumentType `gorm:"column:type;type:varchar(32);not null" json:"type"`
	AssociatedItem *string            `gorm:"column:associated_item;type:varchar(128);default:null" json:"associated_item"`
	ExpiryDate     *datatypes.Date    `gorm:"column:expiry_date;type:date;default:null" json:"expiry_date"`
	Link           *string            `gorm:"column:link;type:text;default:null" json:"link"`
	Notes          *string            `gorm:"column:notes;type:text;default:null" json:"notes"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}
