package input

import (
	"strings"

	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

var keyModNames = []struct {
	mod  KeyMod
	name string
}{
	{ModLShift, "LShift"},
	{ModRShift, "RShift"},
	{ModLCtrl, "LCtrl"},
	{ModRCtrl, "RCtrl"},
	{ModLAlt, "LAlt"},
	{ModRAlt, "RAlt"},
	{ModLGui, "LGui"},
	{ModRGui, "RGui"},
	{ModNum, "Num"},
	{ModCaps, "Caps"},
	{ModMode, "Mode"},
	{ModScroll, "Scroll"},
}

// String lists the set modifiers separated by '|'.
func (m KeyMod) String() string {
	if m == ModNone {
		return "None"
	}
	var names []string
	rest := m
	for _, n := range keyModNames {
		if m&n.mod != 0 {
			names = append(names, n.name)
			rest &^= n.mod
		}
	}
	if rest != 0 {
		panic(&centurion.EnumError{Enum: "KeyMod", Value: uint16(rest)})
	}
	return strings.Join(names, "|")
}

// Any reports whether any bit of mods is set.
func (m KeyMod) Any(mods KeyMod) bool {
	return m&mods != 0
}

// ModState returns the modifiers currently held.
func ModState() KeyMod {
	return KeyMod(sdl.GetModState())
}

// SetModState overrides SDL's idea of the held modifiers.
func SetModState(mods KeyMod) {
	sdl.SetModState(sdl.Keymod(mods))
}

// Keyboard is a two-frame snapshot of the keyboard state, for detecting presses and releases between
// calls to Refresh.
type Keyboard struct {
	previous []uint8
	current  []uint8
	mods     KeyMod
}

// NewKeyboard creates a snapshot with every key released.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		previous: make([]uint8, ScanCodeCount),
		current:  make([]uint8, ScanCodeCount),
	}
}

// Refresh advances the snapshot to SDL's current keyboard state.  Events must have been pumped since
// the previous call for the state to change.
func (k *Keyboard) Refresh() {
	k.update(sdl.GetKeyboardState(), ModState())
}

func (k *Keyboard) update(state []uint8, mods KeyMod) {
	k.previous, k.current = k.current, k.previous
	clear(k.current)
	copy(k.current, state)
	k.mods = mods
}

func (k *Keyboard) down(frame []uint8, code ScanCode) bool {
	return int(code) < len(frame) && frame[code] != 0
}

// IsPressed reports whether the key is down in the current frame.
func (k *Keyboard) IsPressed(code ScanCode) bool {
	return k.down(k.current, code)
}

// IsHeld reports whether the key was down in both frames.
func (k *Keyboard) IsHeld(code ScanCode) bool {
	return k.down(k.current, code) && k.down(k.previous, code)
}

// JustPressed reports whether the key went down between the two frames.
func (k *Keyboard) JustPressed(code ScanCode) bool {
	return k.down(k.current, code) && !k.down(k.previous, code)
}

// JustReleased reports whether the key went up between the two frames.
func (k *Keyboard) JustReleased(code ScanCode) bool {
	return !k.down(k.current, code) && k.down(k.previous, code)
}

// IsKeyPressed is IsPressed for the scan code that produces key.
func (k *Keyboard) IsKeyPressed(key KeyCode) bool {
	return k.IsPressed(key.Scan())
}

// Modifiers returns the modifiers held when the snapshot was refreshed.
func (k *Keyboard) Modifiers() KeyMod {
	return k.mods
}

// IsModifierActive reports whether any bit of mods was held.
func (k *Keyboard) IsModifierActive(mods KeyMod) bool {
	return k.mods.Any(mods)
}

// KeyCount returns the number of keys the snapshot tracks.
func (k *Keyboard) KeyCount() int {
	return len(k.current)
}
