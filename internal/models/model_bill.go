package models

import (
	"time"

	"gorm.io/datatypes"
)

// Bill is a one-off or recurring payment obligation. Marking a recurring bill
// paid spawns next month's bill (see the track service).
type Bill struct {
	ID          string          `gorm:"column:id;type:uuid;primary_key" json:"id"`
	HouseholdID string          `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	CreatedBy   *string         `gorm:"column:created_by;type:uuid;default:null" json:"created_by"`
	Name        string          `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Amount      *float64        `gorm:"column:amount;type:numeric(12,2);default:null" json:"amount"`
	DueDate     datatypes.Date  `gorm:"column:due_date;type:date;not null" json:"due_date"`
	Paid        bool            `gorm:"column:paid;not null;default:false" json:"paid"`
	PaidDate    *datatypes.Date `gorm:"column:paid_date;type:date;default:null" json:"paid_date"`
	Recurring   bool            `gorm:"column:recurring;not null;default:false" json:"recurring"`
	Notes       *string         `gorm:"column:notes;type:text;default:null" json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Bill) TableName() string {
	return "bills"
}

func (b *Bill) DueAt() time.Time {
	return time.Time(b.DueDate)
}
