package dates

import (
	"math"
	"time"
)

// Warn thresholds used across the dashboard and cards. Callers pass the one
// that fits the entity; TierFor never assumes a default.
const (
	WarnThresholdDefault  = 14
	WarnThresholdWeek     = 7
	WarnThresholdEscalate = 3
	WarnThresholdDocument = 60
)

// Midnight truncates t to the start of its calendar day, keeping the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the number of calendar days from today to target.
// Negative means target is in the past. ok is false when target is nil.
// The difference is rounded, not truncated, so DST transitions that make a
// "day" 23 or 25 hours long still count as one day.
func DaysUntil(today time.Time, target *time.Time) (int, bool) {
	if target == nil {
		return 0, false
	}
	from := Midnight(today)
	to := Midnight(target.In(today.Location()))
	return int(math.Round(to.Sub(from).Hours() / 24)), true
}

// CalcNextDue derives the next due date of a recurring task from its last
// completion. nil in, nil out.
func CalcNextDue(lastCompleted *time.Time, intervalDays int) *time.Time {
	if lastCompleted == nil {
		return nil
	}
	next := Midnight(*lastCompleted).AddDate(0, 0, intervalDays)
	return &next
}

// NextMonthClamped advances d by one calendar month, clamping the day-of-month
// to the last valid day of the target month: Jan 31 -> Feb 28 (Feb 29 in leap
// years), Dec wraps to Jan of the next year.
func NextMonthClamped(d time.Time) time.Time {
	year, month, day := d.Date()
	month++
	if month > time.December {
		month = time.January
		year++
	}
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, d.Location())
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the following month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
