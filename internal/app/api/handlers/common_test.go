package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseDate_Valid(t *testing.T) {
	d, err := parseDate(strPtr("2024-02-29"))
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), time.Time(*d))
}

func TestParseDate_EmptyMeansNoDate(t *testing.T) {
	d, err := parseDate(nil)
	require.NoError(t, err)
	require.Nil(t, d)

	d, err = parseDate(strPtr(""))
	require.NoError(t, err)
	require.Nil(t, d)
}

func TestParseDate_RejectsOtherLayouts(t *testing.T) {
	_, err := parseDate(strPtr("02/29/2024"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "YYYY-MM-DD")
}
