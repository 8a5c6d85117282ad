package input

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

// MouseButton mirrors SDL's SDL_BUTTON_* indices.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota + 1
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)

var mouseButtonNames = map[MouseButton]string{
	ButtonLeft:   "Left",
	ButtonMiddle: "Middle",
	ButtonRight:  "Right",
	ButtonX1:     "X1",
	ButtonX2:     "X2",
}

func (b MouseButton) String() string {
	return centurion.EnumName(mouseButtonNames, "MouseButton", b)
}

// Mask is the button's bit in a mouse state word.
func (b MouseButton) Mask() uint32 {
	return 1 << (b - 1)
}

// Mouse is a two-frame snapshot of the mouse, for detecting clicks between calls to Refresh.
type Mouse struct {
	x, y     int32
	previous uint32
	current  uint32
}

// NewMouse creates a snapshot at the origin with every button released.
func NewMouse() *Mouse {
	return &Mouse{}
}

// Refresh advances the snapshot to SDL's current mouse state.
func (m *Mouse) Refresh() {
	x, y, state := sdl.GetMouseState()
	m.update(x, y, state)
}

func (m *Mouse) update(x, y int32, state uint32) {
	m.x, m.y = x, y
	m.previous, m.current = m.current, state
}

// Position returns the cursor position relative to the focused window.
func (m *Mouse) Position() (x, y int32) {
	return m.x, m.y
}

func (m *Mouse) IsPressed(b MouseButton) bool    { return m.current&b.Mask() != 0 }
func (m *Mouse) JustPressed(b MouseButton) bool  { return m.IsPressed(b) && m.previous&b.Mask() == 0 }
func (m *Mouse) JustReleased(b MouseButton) bool { return !m.IsPressed(b) && m.previous&b.Mask() != 0 }

// ShowCursor makes the cursor visible.
func ShowCursor() error {
	_, err := sdl.ShowCursor(sdl.ENABLE)
	return centurion.Wrap(centurion.SDL, err)
}

// HideCursor hides the cursor.
func HideCursor() error {
	_, err := sdl.ShowCursor(sdl.DISABLE)
	return centurion.Wrap(centurion.SDL, err)
}

// CursorVisible reports whether the cursor is shown.
func CursorVisible() bool {
	shown, err := sdl.ShowCursor(sdl.QUERY)
	return err == nil && shown == sdl.ENABLE
}
