package models

import (
	"time"

	"gorm.io/datatypes"
)

// Activity is a dated household event (registration, appointment, club fee),
// optionally carrying an amount someone still owes.
type Activity struct {
	ID               string          `gorm:"column:id;type:uuid;primary_key" json:"id"`
	HouseholdID      string          `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	PersonID         *string         `gorm:"column:person_id;type:uuid;default:null" json:"person_id"`
	Name             string          `gorm:"column:name;type:varchar(128);not null" json:"name"`
	EventDescription *string         `gorm:"column:event_description;type:text;default:null" json:"event_description"`
	EventDate        *datatypes.Date `gorm:"column:event_date;type:date;default:null" json:"event_date"`
	AmountDue        *float64        `gorm:"column:amount_due;type:numeric(12,2);default:null" json:"amount_due"`
	Paid             bool            `gorm:"column:paid;not null;default:false" json:"paid"`
	Notes            *string         `gorm:"column:notes;type:text;default:null" json:"notes"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	Person *Profile `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}

// PaymentPending reports whether an amount is set and not yet paid.
func (a *Activity) PaymentPending() bool {
	return a.AmountDue != nil && !a.Paid
}
