package models

import "time"

// Invite is a single-use join link for a household. Email is optional; when
// set it only pre-fills the join form, it is not enforced.
type Invite struct {
	ID          string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	HouseholdID string    `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	Email       *string   `gorm:"column:email;type:varchar(255);default:null" json:"email"`
	Token       string    `gorm:"column:token;type:uuid;not null;uniqueIndex" json:"token"`
	Used        bool      `gorm:"column:used;not null;default:false" json:"used"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Invite) TableName() string {
	return "invites"
}
