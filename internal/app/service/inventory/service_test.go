package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mossleaf/homeops/internal/models"
)

func TestPartitionChecked_SplitsByAlwaysNeeded(t *testing.T) {
	items := []*models.InventoryItem{
		{ID: "i1", Name: "Milk", Checked: true, AlwaysNeeded: true},
		{ID: "i2", Name: "Party hats", Checked: true},
		{ID: "i3", Name: "Eggs", Checked: false, AlwaysNeeded: true},
		{ID: "i4", Name: "Batteries", Checked: true},
	}

	keep, drop := PartitionChecked(items)

	require.Len(t, keep, 1)
	require.Equal(t, "i1", keep[0].ID)
	require.Len(t, drop, 2)
	require.Equal(t, "i2", drop[0].ID)
	require.Equal(t, "i4", drop[1].ID)
}

func TestPartitionChecked_UncheckedUntouched(t *testing.T) {
	items := []*models.InventoryItem{
		{ID: "i1", Name: "Milk"},
		{ID: "i2", Name: "Eggs", AlwaysNeeded: true},
	}

	keep, drop := PartitionChecked(items)

	require.Empty(t, keep)
	require.Empty(t, drop)
}

func TestPartitionChecked_Empty(t *testing.T) {
	keep, drop := PartitionChecked(nil)
	require.Empty(t, keep)
	require.Empty(t, drop)
}
