// pkg/style/style_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the palette and state styles

package style

import (
	"testing"

	"github.com/arthur-debert/robe/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestStateStyle(t *testing.T) {
	assert.Equal(t, SuccessStyle.GetForeground(), StateStyle(types.StateClean).GetForeground())
	assert.Equal(t, WarningStyle.GetForeground(), StateStyle(types.StateModified).GetForeground())
	assert.Equal(t, ErrorStyle.GetForeground(), StateStyle(types.StateMissing).GetForeground())
	assert.Equal(t, MutedStyle.GetForeground(), StateStyle(types.StateNone).GetForeground())
}

func TestPaletteDistinguishesStates(t *testing.T) {
	colors := []string{Wardrobe.Clean.Dark, Wardrobe.Drift.Dark, Wardrobe.Missing.Dark, Wardrobe.Muted.Dark}
	seen := map[string]bool{}
	for _, c := range colors {
		assert.False(t, seen[c], "colour %s used for two states", c)
		seen[c] = true
	}
	assert.Equal(t, Wardrobe.Drift, StateStyle(types.StateModified).GetForeground())
}
