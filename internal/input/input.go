package input

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"drone-viewer/internal/control"
)

// Key is a non-printable key the viewer reacts to
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

var keyNames = map[string]Key{
	"up":     KeyUp,
	"down":   KeyDown,
	"left":   KeyLeft,
	"right":  KeyRight,
	"escape": KeyEscape,
}

// String returns the binding name of the key
func (k Key) String() string {
	for name, key := range keyNames {
		if key == k {
			return name
		}
	}
	return "unknown"
}

// InputManager maps typed characters and special keys to logical actions.
// Characters are case sensitive: 'R' and 'r' are different bindings.
type InputManager struct {
	mu sync.RWMutex

	runeToAction map[rune]control.Action
	keyToAction  map[Key]control.Action
}

// NewInputManager creates a manager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		runeToAction: make(map[rune]control.Action),
		keyToAction:  make(map[Key]control.Action),
	}

	// Drone translation
	im.BindRune('w', control.ActionMoveForward)
	im.BindRune('s', control.ActionMoveBackward)
	im.BindRune('a', control.ActionMoveLeft)
	im.BindRune('d', control.ActionMoveRight)
	im.BindRune('q', control.ActionMoveUp)
	im.BindRune('e', control.ActionMoveDown)

	im.BindRune('R', control.ActionStepGrow)
	im.BindRune('r', control.ActionStepShrink)
	im.BindRune('f', control.ActionToggleWireframe)
	im.BindRune('h', control.ActionToggleHUD)

	// View angles
	im.BindKey(KeyUp, control.ActionTiltUp)
	im.BindKey(KeyDown, control.ActionTiltDown)
	im.BindKey(KeyLeft, control.ActionRotateLeft)
	im.BindKey(KeyRight, control.ActionRotateRight)
	im.BindKey(KeyEscape, control.ActionQuit)

	return im
}

// BindRune binds a typed character to an action, replacing any previous binding
func (im *InputManager) BindRune(r rune, action control.Action) {
	if action <= control.ActionNone || action >= control.ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.runeToAction[r] = action
}

// BindKey binds a special key to an action, replacing any previous binding
func (im *InputManager) BindKey(key Key, action control.Action) {
	if key == KeyUnknown || action <= control.ActionNone || action >= control.ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToAction[key] = action
}

// UnbindRune removes the binding for a character
func (im *InputManager) UnbindRune(r rune) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.runeToAction, r)
}

// UnbindKey removes the binding for a special key
func (im *InputManager) UnbindKey(key Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.keyToAction, key)
}

// RuneAction returns the action bound to a typed character
func (im *InputManager) RuneAction(r rune) control.Action {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.runeToAction[r]
}

// KeyAction returns the action bound to a special key
func (im *InputManager) KeyAction(key Key) control.Action {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.keyToAction[key]
}

// Apply rebinds keys by name. A name is either a single character or one of
// up, down, left, right, escape. An empty action removes the binding.
// Nothing is changed if any entry is invalid.
func (im *InputManager) Apply(bindings map[string]string) error {
	type binding struct {
		key    Key
		r      rune
		action control.Action
	}

	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	parsed := make([]binding, 0, len(bindings))
	for _, name := range names {
		var b binding
		if key, ok := keyNames[strings.ToLower(name)]; ok {
			b.key = key
		} else if utf8.RuneCountInString(name) == 1 {
			b.r, _ = utf8.DecodeRuneInString(name)
		} else {
			return fmt.Errorf("unknown key %q", name)
		}

		actionName := bindings[name]
		if actionName != "" {
			action, ok := control.ParseAction(actionName)
			if !ok {
				return fmt.Errorf("unknown action %q for key %q", actionName, name)
			}
			b.action = action
		}
		parsed = append(parsed, b)
	}

	for _, b := range parsed {
		switch {
		case b.key != KeyUnknown && b.action == control.ActionNone:
			im.UnbindKey(b.key)
		case b.key != KeyUnknown:
			im.BindKey(b.key, b.action)
		case b.action == control.ActionNone:
			im.UnbindRune(b.r)
		default:
			im.BindRune(b.r, b.action)
		}
	}
	return nil
}

// Bindings lists the current bindings as "key=action", sorted
func (im *InputManager) Bindings() []string {
	im.mu.RLock()
	defer im.mu.RUnlock()

	out := make([]string, 0, len(im.runeToAction)+len(im.keyToAction))
	for r, a := range im.runeToAction {
		out = append(out, string(r)+"="+a.String())
	}
	for k, a := range im.keyToAction {
		out = append(out, k.String()+"="+a.String())
	}
	sort.Strings(out)
	return out
}
