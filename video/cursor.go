package video

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

// Cursor wraps SDL_Cursor.
type Cursor struct {
	res centurion.Resource[*sdl.Cursor]
}

func freeCursor(c *sdl.Cursor) { sdl.FreeCursor(c) }

// NewSystemCursor creates one of the system's standard cursors.
func NewSystemCursor(kind SystemCursor) (*Cursor, error) {
	res, err := centurion.Acquire(centurion.SDL, sdl.CreateSystemCursor(sdl.SystemCursor(kind)), nil, freeCursor)
	if err != nil {
		return nil, err
	}
	return &Cursor{res: res}, nil
}

// NewColorCursor creates a cursor from a surface with the given hotspot.
func NewColorCursor(surface *Surface, hotspot Point) (*Cursor, error) {
	ptr := sdl.CreateColorCursor(surface.Get(), hotspot.X, hotspot.Y)
	res, err := centurion.Acquire(centurion.SDL, ptr, nil, freeCursor)
	if err != nil {
		return nil, err
	}
	return &Cursor{res: res}, nil
}

// CursorHandle aliases a cursor owned elsewhere.
func CursorHandle(ptr *sdl.Cursor) *Cursor {
	return &Cursor{res: centurion.Borrowed(ptr)}
}

// CurrentCursor returns a handle to the active cursor.
func CurrentCursor() *Cursor {
	return CursorHandle(sdl.GetCursor())
}

// DefaultCursor returns a handle to the system default cursor.
func DefaultCursor() *Cursor {
	return CursorHandle(sdl.GetDefaultCursor())
}

// ResetCursor activates the default cursor.
func ResetCursor() {
	sdl.SetCursor(sdl.GetDefaultCursor())
}

// ForceRedrawCursor redraws the active cursor.
func ForceRedrawCursor() {
	sdl.SetCursor(nil)
}

// Handle returns a non-owning alias.
func (c *Cursor) Handle() *Cursor {
	return &Cursor{res: c.res.Borrow()}
}

func (c *Cursor) Get() *sdl.Cursor { return c.res.Get() }
func (c *Cursor) Valid() bool      { return c.res.Valid() }
func (c *Cursor) Close()           { c.res.Close() }

// Enable makes this the active cursor.
func (c *Cursor) Enable() {
	sdl.SetCursor(c.res.Get())
}

// Enabled reports whether this is the active cursor.
func (c *Cursor) Enabled() bool {
	return sdl.GetCursor() == c.res.Get()
}
