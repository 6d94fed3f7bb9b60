package models

import "time"

// Household is the tenant unit; every domain record is scoped to exactly one.
type Household struct {
	ID        string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(128);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Household) TableName() string {
	return "households"
}
