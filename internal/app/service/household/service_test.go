package household

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomAvatarColor_DrawsFromPalette(t *testing.T) {
	for i := 0; i < 50; i++ {
		require.Contains(t, AvatarColors, randomAvatarColor())
	}
}
