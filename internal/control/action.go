package control

import (
	"drone-viewer/internal/config"
	"drone-viewer/internal/view"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionNone Action = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionRotateLeft
	ActionRotateRight
	ActionTiltUp
	ActionTiltDown
	ActionStepGrow
	ActionStepShrink
	ActionToggleWireframe
	ActionToggleHUD
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:            "none",
	ActionMoveForward:     "move_forward",
	ActionMoveBackward:    "move_backward",
	ActionMoveLeft:        "move_left",
	ActionMoveRight:       "move_right",
	ActionMoveUp:          "move_up",
	ActionMoveDown:        "move_down",
	ActionRotateLeft:      "rotate_left",
	ActionRotateRight:     "rotate_right",
	ActionTiltUp:          "tilt_up",
	ActionTiltDown:        "tilt_down",
	ActionStepGrow:        "step_grow",
	ActionStepShrink:      "step_shrink",
	ActionToggleWireframe: "toggle_wireframe",
	ActionToggleHUD:       "toggle_hud",
	ActionQuit:            "quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps a name as printed by String back to the action
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return ActionNone, false
}

// TranslateStep is how far one key press moves the drone
const TranslateStep = 1.0

// Result tells the event loop what to do after an action
type Result struct {
	Redraw bool
	Quit   bool
}

// Dispatch applies a single action to the view state and runtime settings.
// Unknown actions are no-ops.
func Dispatch(a Action, s *view.State) Result {
	switch a {
	case ActionMoveForward:
		s.Translate(2, TranslateStep)
	case ActionMoveBackward:
		s.Translate(2, -TranslateStep)
	case ActionMoveLeft:
		s.Translate(0, TranslateStep)
	case ActionMoveRight:
		s.Translate(0, -TranslateStep)
	case ActionMoveUp:
		s.Translate(1, TranslateStep)
	case ActionMoveDown:
		s.Translate(1, -TranslateStep)
	case ActionRotateLeft:
		s.RotateLeft()
	case ActionRotateRight:
		s.RotateRight()
	case ActionTiltUp:
		s.TiltUp()
	case ActionTiltDown:
		s.TiltDown()
	case ActionStepGrow:
		s.GrowStep()
	case ActionStepShrink:
		s.ShrinkStep()
	case ActionToggleWireframe:
		config.SetWireframe(!config.GetWireframe())
	case ActionToggleHUD:
		config.SetShowHUD(!config.GetShowHUD())
	case ActionQuit:
		return Result{Quit: true}
	default:
		return Result{}
	}
	return Result{Redraw: true}
}
