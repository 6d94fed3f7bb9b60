package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/mossleaf/homeops/pkg/dates"
	"github.com/mossleaf/homeops/pkg/types"
)

// MaintenanceItem is a recurring chore. The next due date is derived from
// LastCompleted + IntervalDays, never stored.
type MaintenanceItem struct {
	ID            string                    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	HouseholdID   string                    `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	CreatedBy     *string                   `gorm:"column:created_by;type:uuid;default:null" json:"created_by"`
	Name          string                    `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Category      types.MaintenanceCategory `gorm:"column:category;type:varchar(32);not null" json:"category"`
	IntervalDays  int                       `gorm:"column:interval_days;not null" json:"interval_days"`
	LastCompleted *datatypes.Date           `gorm:"column:last_completed;type:date;default:null" json:"last_completed"`
	Notes         *string                   `gorm:"column:notes;type:text;default:null" json:"notes"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

func (MaintenanceItem) TableName() string {
	return "maintenance_items"
}

// NextDue derives the next due date, nil when the item was never completed.
func (m *MaintenanceItem) NextDue() *time.Time {
	return dates.CalcNextDue(AsTime(m.LastCompleted), m.IntervalDays)
}
