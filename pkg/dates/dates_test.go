package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntil_Today(t *testing.T) {
	today := date(2024, time.March, 15)
	target := date(2024, time.March, 15)

	days, ok := DaysUntil(today, &target)
	require.True(t, ok)
	require.Equal(t, 0, days)
}

func TestDaysUntil_TomorrowAndYesterday(t *testing.T) {
	today := date(2024, time.March, 15)

	tomorrow := date(2024, time.March, 16)
	days, ok := DaysUntil(today, &tomorrow)
	require.True(t, ok)
	require.Equal(t, 1, days)

	yesterday := date(2024, time.March, 14)
	days, ok = DaysUntil(today, &yesterday)
	require.True(t, ok)
	require.Equal(t, -1, days)
}

func TestDaysUntil_NilTarget(t *testing.T) {
	days, ok := DaysUntil(date(2024, time.March, 15), nil)
	require.False(t, ok)
	require.Equal(t, 0, days)
}

func TestDaysUntil_IgnoresTimeOfDay(t *testing.T) {
	// 23:59 today vs 00:01 tomorrow is still one calendar day apart.
	today := time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)
	target := time.Date(2024, time.March, 16, 0, 1, 0, 0, time.UTC)

	days, ok := DaysUntil(today, &target)
	require.True(t, ok)
	require.Equal(t, 1, days)
}

func TestDaysUntil_AcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Spring-forward night: the elapsed interval is 23 hours, still one day.
	today := time.Date(2024, time.March, 9, 12, 0, 0, 0, loc)
	target := time.Date(2024, time.March, 10, 12, 0, 0, 0, loc)

	days, ok := DaysUntil(today, &target)
	require.True(t, ok)
	require.Equal(t, 1, days)
}

func TestCalcNextDue_NilLastCompleted(t *testing.T) {
	require.Nil(t, CalcNextDue(nil, 30))
}

func TestCalcNextDue_AddsInterval(t *testing.T) {
	last := date(2024, time.January, 10)

	next := CalcNextDue(&last, 90)
	require.NotNil(t, next)
	require.Equal(t, date(2024, time.April, 9), *next)
}

func TestCalcNextDue_NormalizesTimeOfDay(t *testing.T) {
	last := time.Date(2024, time.June, 1, 18, 30, 0, 0, time.UTC)

	next := CalcNextDue(&last, 7)
	require.NotNil(t, next)
	require.Equal(t, date(2024, time.June, 8), *next)
}

func TestNextMonthClamped_LeapYear(t *testing.T) {
	next := NextMonthClamped(date(2024, time.January, 31))
	require.Equal(t, date(2024, time.February, 29), next)
}

func TestNextMonthClamped_NonLeapYear(t *testing.T) {
	next := NextMonthClamped(date(2023, time.January, 31))
	require.Equal(t, date(2023, time.February, 28), next)
}

func TestNextMonthClamped_ThirtyDayTarget(t *testing.T) {
	next := NextMonthClamped(date(2024, time.March, 31))
	require.Equal(t, date(2024, time.April, 30), next)
}

func TestNextMonthClamped_MidMonthUnchangedDay(t *testing.T) {
	next := NextMonthClamped(date(2024, time.May, 15))
	require.Equal(t, date(2024, time.June, 15), next)
}

func TestNextMonthClamped_DecemberWrapsYear(t *testing.T) {
	next := NextMonthClamped(date(2024, time.December, 31))
	require.Equal(t, date(2025, time.January, 31), next)
}

func TestMidnight_KeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	m := Midnight(time.Date(2024, time.March, 15, 17, 45, 12, 0, loc))
	require.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, loc), m)
}
