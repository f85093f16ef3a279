package control

import (
	"testing"

	"drone-viewer/internal/config"
	"drone-viewer/internal/view"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestDispatchTranslation(t *testing.T) {
	s := view.New()
	cases := []struct {
		action Action
		want   mgl32.Vec3
	}{
		{ActionMoveForward, mgl32.Vec3{0, 0, 1}},
		{ActionMoveBackward, mgl32.Vec3{0, 0, -1}},
		{ActionMoveLeft, mgl32.Vec3{1, 0, 0}},
		{ActionMoveRight, mgl32.Vec3{-1, 0, 0}},
		{ActionMoveUp, mgl32.Vec3{0, 1, 0}},
		{ActionMoveDown, mgl32.Vec3{0, -1, 0}},
	}
	for _, c := range cases {
		before := s.Translation
		res := Dispatch(c.action, s)
		assert.True(t, res.Redraw, c.action.String())
		assert.False(t, res.Quit)
		assert.Equal(t, c.want, s.Translation.Sub(before), c.action.String())
	}
}

func TestDispatchAngles(t *testing.T) {
	s := view.New()

	Dispatch(ActionTiltUp, s)
	assert.Equal(t, float32(23), s.Azimuth)
	Dispatch(ActionTiltDown, s)
	assert.Equal(t, float32(20), s.Azimuth)

	Dispatch(ActionRotateLeft, s)
	assert.Equal(t, float32(3), s.Rotation)
	Dispatch(ActionRotateRight, s)
	Dispatch(ActionRotateRight, s)
	assert.Equal(t, float32(-3), s.Rotation)

	Dispatch(ActionStepGrow, s)
	assert.InDelta(t, 4.5, s.StepSize, 1e-6)
	Dispatch(ActionStepShrink, s)
	assert.InDelta(t, 3, s.StepSize, 1e-6)
}

func TestDispatchToggles(t *testing.T) {
	t.Cleanup(func() { config.ApplyRender(config.DefaultConfig()) })
	s := view.New()

	wire := config.GetWireframe()
	assert.True(t, Dispatch(ActionToggleWireframe, s).Redraw)
	assert.Equal(t, !wire, config.GetWireframe())

	hud := config.GetShowHUD()
	Dispatch(ActionToggleHUD, s)
	assert.Equal(t, !hud, config.GetShowHUD())
}

func TestDispatchQuitAndNoop(t *testing.T) {
	s := view.New()
	assert.Equal(t, Result{Quit: true}, Dispatch(ActionQuit, s))

	before := *s
	assert.Equal(t, Result{}, Dispatch(ActionNone, s))
	assert.Equal(t, Result{}, Dispatch(Action(999), s))
	assert.Equal(t, before, *s)
}

func TestParseAction(t *testing.T) {
	for a := ActionNone; a < ActionCount; a++ {
		got, ok := ParseAction(a.String())
		assert.True(t, ok)
		assert.Equal(t, a, got)
	}
	_, ok := ParseAction("barrel_roll")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Action(-1).String())
}
