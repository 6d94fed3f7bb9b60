package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRelativeDays_RoundTripLabels(t *testing.T) {
	require.Equal(t, "—", RelativeDays(0, false))
	require.Equal(t, "today", RelativeDays(0, true))
	require.Equal(t, "tomorrow", RelativeDays(1, true))
	require.Equal(t, "yesterday", RelativeDays(-1, true))
	require.Equal(t, "in 5d", RelativeDays(5, true))
	require.Equal(t, "5d ago", RelativeDays(-5, true))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "Feb 3, 2024", FormatDate(&d))
	require.Equal(t, "—", FormatDate(nil))
}

func TestFormatCurrency_Grouping(t *testing.T) {
	v := 1234.56
	require.Equal(t, "$1,234.56", FormatCurrency(&v))

	v = 1234567.89
	require.Equal(t, "$1,234,567.89", FormatCurrency(&v))
}

func TestFormatCurrency_SmallAndZero(t *testing.T) {
	v := 9.99
	require.Equal(t, "$9.99", FormatCurrency(&v))

	v = 0
	require.Equal(t, "$0.00", FormatCurrency(&v))
}

func TestFormatCurrency_Negative(t *testing.T) {
	v := -42.5
	require.Equal(t, "-$42.50", FormatCurrency(&v))
}

func TestFormatCurrency_Nil(t *testing.T) {
	require.Equal(t, "—", FormatCurrency(nil))
}
