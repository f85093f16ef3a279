package input

import (
	"testing"

	"drone-viewer/internal/control"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBindings(t *testing.T) {
	im := NewInputManager()

	runes := map[rune]control.Action{
		'w': control.ActionMoveForward,
		's': control.ActionMoveBackward,
		'a': control.ActionMoveLeft,
		'd': control.ActionMoveRight,
		'q': control.ActionMoveUp,
		'e': control.ActionMoveDown,
		'R': control.ActionStepGrow,
		'r': control.ActionStepShrink,
		'f': control.ActionToggleWireframe,
		'h': control.ActionToggleHUD,
	}
	for r, want := range runes {
		assert.Equal(t, want, im.RuneAction(r), "rune %q", r)
	}

	assert.Equal(t, control.ActionTiltUp, im.KeyAction(KeyUp))
	assert.Equal(t, control.ActionTiltDown, im.KeyAction(KeyDown))
	assert.Equal(t, control.ActionRotateLeft, im.KeyAction(KeyLeft))
	assert.Equal(t, control.ActionRotateRight, im.KeyAction(KeyRight))
	assert.Equal(t, control.ActionQuit, im.KeyAction(KeyEscape))
}

func TestUnboundKeysDoNothing(t *testing.T) {
	im := NewInputManager()
	assert.Equal(t, control.ActionNone, im.RuneAction('z'))
	assert.Equal(t, control.ActionNone, im.RuneAction('W'))
	assert.Equal(t, control.ActionNone, im.KeyAction(KeyUnknown))
}

func TestBindIgnoresInvalidActions(t *testing.T) {
	im := NewInputManager()
	im.BindRune('w', control.ActionNone)
	im.BindRune('w', control.ActionCount)
	assert.Equal(t, control.ActionMoveForward, im.RuneAction('w'))

	im.BindKey(KeyUnknown, control.ActionQuit)
	assert.Equal(t, control.ActionNone, im.KeyAction(KeyUnknown))
}

func TestApplyRebinds(t *testing.T) {
	im := NewInputManager()
	err := im.Apply(map[string]string{
		"x":      "quit",
		"w":      "",
		"Escape": "toggle_hud",
	})
	require.NoError(t, err)

	assert.Equal(t, control.ActionQuit, im.RuneAction('x'))
	assert.Equal(t, control.ActionNone, im.RuneAction('w'))
	assert.Equal(t, control.ActionToggleHUD, im.KeyAction(KeyEscape))
}

func TestApplyRejectsBadEntriesAtomically(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
	}{
		{"unknown key", map[string]string{"x": "quit", "pageup": "quit"}},
		{"unknown action", map[string]string{"x": "quit", "y": "jump"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := NewInputManager()
			assert.Error(t, im.Apply(tt.bindings))
			assert.Equal(t, control.ActionNone, im.RuneAction('x'))
		})
	}
}

func TestBindingsListing(t *testing.T) {
	im := NewInputManager()
	list := im.Bindings()
	assert.Len(t, list, 15)
	assert.Contains(t, list, "w=move_forward")
	assert.Contains(t, list, "escape=quit")
	assert.IsIncreasing(t, list)
}
