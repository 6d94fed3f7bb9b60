package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/mossleaf/homeops/pkg/dates"
)

// AsTime converts a nullable date column into the *time.Time shape the date
// math in pkg/dates works on.
func AsTime(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}

// DateOf truncates t to its calendar day and wraps it as a date column value.
func DateOf(t time.Time) *datatypes.Date {
	d := datatypes.Date(dates.Midnight(t))
	return &d
}
