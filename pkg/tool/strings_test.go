package tool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitials(t *testing.T) {
	require.Equal(t, "JD", Initials("Jane Doe"))
	require.Equal(t, "J", Initials("jane"))
	require.Equal(t, "JA", Initials("Jane Anne Doe"))
	require.Equal(t, "", Initials("  "))
}

func TestInitials_MultiByte(t *testing.T) {
	require.Equal(t, "ÅS", Initials("åsa svensson"))
}
