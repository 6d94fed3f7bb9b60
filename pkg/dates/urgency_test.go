package dates

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTierFor_NoDateIsUnknown(t *testing.T) {
	require.Equal(t, TierUnknown, TierFor(0, false, WarnThresholdDefault))
}

func TestTierFor_PastIsOverdue(t *testing.T) {
	require.Equal(t, TierOverdue, TierFor(-1, true, WarnThresholdDefault))
	require.Equal(t, TierOverdue, TierFor(-30, true, WarnThresholdDefault))
}

func TestTierFor_ThresholdBoundary(t *testing.T) {
	// Zero and the threshold itself are both warn; one past it is normal.
	require.Equal(t, TierWarn, TierFor(0, true, WarnThresholdWeek))
	require.Equal(t, TierWarn, TierFor(7, true, WarnThresholdWeek))
	require.Equal(t, TierNormal, TierFor(8, true, WarnThresholdWeek))
}

func TestTierFor_DocumentThreshold(t *testing.T) {
	require.Equal(t, TierWarn, TierFor(60, true, WarnThresholdDocument))
	require.Equal(t, TierNormal, TierFor(61, true, WarnThresholdDocument))
}
