package video

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/core/std"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultSize sets the default size for new windows.
//
// If not overridden, it defaults to 800x600px
var DefaultSize = std.XY[int]{
	X: 800,
	Y: 600,
}

// Window wraps SDL_Window.
type Window struct {
	res centurion.Resource[*sdl.Window]
}

// WindowPositionCentered and WindowPositionUndefined mirror SDL's special position values.
const (
	WindowPositionUndefined int32 = 0x1FFF0000
	WindowPositionCentered  int32 = 0x2FFF0000
)

// NewWindow creates a centered window of the given size; a nil size uses DefaultSize.
func NewWindow(title string, size *Area, flags WindowFlags) (*Window, error) {
	w, h := int32(DefaultSize.X), int32(DefaultSize.Y)
	if size != nil {
		w, h = size.Width, size.Height
	}

	ptr, err := sdl.CreateWindow(title, WindowPositionCentered, WindowPositionCentered, w, h, uint32(flags))
	res, err := centurion.Acquire(centurion.SDL, ptr, err, func(w *sdl.Window) {
		_ = w.Destroy()
	})
	if err != nil {
		return nil, err
	}

	window := &Window{res: res}
	core.Verbosef(ModuleName, "window [%d] created\n", window.ID())
	return window, nil
}

// WindowHandle aliases a window owned elsewhere.
func WindowHandle(ptr *sdl.Window) *Window {
	return &Window{res: centurion.Borrowed(ptr)}
}

// WindowFromID returns a handle to the window with the given id; it is invalid when no window matches.
func WindowFromID(id uint32) *Window {
	ptr, _ := sdl.GetWindowFromID(id)
	return WindowHandle(ptr)
}

// MouseFocusWindow returns a handle to the window with mouse focus, if any.
func MouseFocusWindow() *Window {
	return WindowHandle(sdl.GetMouseFocus())
}

// KeyboardFocusWindow returns a handle to the window with keyboard focus, if any.
func KeyboardFocusWindow() *Window {
	return WindowHandle(sdl.GetKeyboardFocus())
}

// Handle returns a non-owning alias.
func (w *Window) Handle() *Window {
	return &Window{res: w.res.Borrow()}
}

func (w *Window) Get() *sdl.Window { return w.res.Get() }
func (w *Window) Valid() bool      { return w.res.Valid() }
func (w *Window) Close()           { w.res.Close() }

// NewRenderer creates a renderer bound to this window.
func (w *Window) NewRenderer(flags RendererFlags) (*Renderer, error) {
	return NewRenderer(w, flags)
}

// ID returns the window's identifier, as used by window events.
func (w *Window) ID() uint32 {
	id, _ := w.res.Get().GetID()
	return id
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.res.Get().GetTitle()
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.res.Get().SetTitle(title)
}

// Size returns the size of the client area.
func (w *Window) Size() Area {
	width, height := w.res.Get().GetSize()
	return Area{Width: width, Height: height}
}

// SetSize resizes the client area.
func (w *Window) SetSize(size Area) {
	w.res.Get().SetSize(size.Width, size.Height)
}

// MinimumSize returns the minimum client area size.
func (w *Window) MinimumSize() Area {
	width, height := w.res.Get().GetMinimumSize()
	return Area{Width: width, Height: height}
}

// SetMinimumSize sets the minimum client area size.
func (w *Window) SetMinimumSize(size Area) {
	w.res.Get().SetMinimumSize(size.Width, size.Height)
}

// MaximumSize returns the maximum client area size.
func (w *Window) MaximumSize() Area {
	width, height := w.res.Get().GetMaximumSize()
	return Area{Width: width, Height: height}
}

// SetMaximumSize sets the maximum client area size.
func (w *Window) SetMaximumSize(size Area) {
	w.res.Get().SetMaximumSize(size.Width, size.Height)
}

// Position returns the window position.
func (w *Window) Position() Point {
	x, y := w.res.Get().GetPosition()
	return Point{X: x, Y: y}
}

// SetPosition moves the window.
func (w *Window) SetPosition(p Point) {
	w.res.Get().SetPosition(p.X, p.Y)
}

// Center moves the window to the center of its display.
func (w *Window) Center() {
	w.res.Get().SetPosition(WindowPositionCentered, WindowPositionCentered)
}

// Flags returns the current window flags.
func (w *Window) Flags() WindowFlags {
	return WindowFlags(w.res.Get().GetFlags())
}

// HasFlag reports whether flag is currently set.
func (w *Window) HasFlag(flag WindowFlags) bool {
	return w.Flags().Has(flag)
}

func (w *Window) Visible() bool    { return w.HasFlag(WindowShown) }
func (w *Window) Fullscreen() bool { return w.HasFlag(WindowFullscreen) }
func (w *Window) Resizable() bool  { return w.HasFlag(WindowResizable) }
func (w *Window) Borderless() bool { return w.HasFlag(WindowBorderless) }
func (w *Window) Minimized() bool  { return w.HasFlag(WindowMinimized) }
func (w *Window) Maximized() bool  { return w.HasFlag(WindowMaximized) }
func (w *Window) OpenGL() bool     { return w.HasFlag(WindowOpenGL) }

func (w *Window) Show()     { w.res.Get().Show() }
func (w *Window) Hide()     { w.res.Get().Hide() }
func (w *Window) Raise()    { w.res.Get().Raise() }
func (w *Window) Maximize() { w.res.Get().Maximize() }
func (w *Window) Minimize() { w.res.Get().Minimize() }
func (w *Window) Restore()  { w.res.Get().Restore() }

// SetFullscreen switches between windowed and fullscreen mode.
func (w *Window) SetFullscreen(enabled bool) error {
	var flags uint32
	if enabled {
		flags = uint32(WindowFullscreen)
	}
	return centurion.Wrap(centurion.SDL, w.res.Get().SetFullscreen(flags))
}

// SetFullscreenDesktop switches between windowed and borderless desktop-sized mode.
func (w *Window) SetFullscreenDesktop(enabled bool) error {
	var flags uint32
	if enabled {
		flags = uint32(WindowFullscreenDesktop)
	}
	return centurion.Wrap(centurion.SDL, w.res.Get().SetFullscreen(flags))
}

// SetResizable toggles whether the user may resize the window.
func (w *Window) SetResizable(resizable bool) {
	w.res.Get().SetResizable(resizable)
}

// SetBordered toggles window decorations.
func (w *Window) SetBordered(bordered bool) {
	w.res.Get().SetBordered(bordered)
}

// SetGrab toggles input confinement to the window.
func (w *Window) SetGrab(grab bool) {
	w.res.Get().SetGrab(grab)
}

// Grabbed reports whether input is confined to the window.
func (w *Window) Grabbed() bool {
	return w.res.Get().GetGrab()
}

// SetBrightness sets the gamma brightness of the window's display, in [0, 1].
func (w *Window) SetBrightness(brightness float32) error {
	return centurion.Wrap(centurion.SDL, w.res.Get().SetBrightness(brightness))
}

// Brightness returns the gamma brightness of the window's display.
func (w *Window) Brightness() float32 {
	return w.res.Get().GetBrightness()
}

// SetOpacity sets the window opacity, in [0, 1].
func (w *Window) SetOpacity(opacity float32) error {
	return centurion.Wrap(centurion.SDL, w.res.Get().SetWindowOpacity(opacity))
}

// Opacity returns the window opacity.
func (w *Window) Opacity() (float32, error) {
	opacity, err := w.res.Get().GetWindowOpacity()
	return opacity, centurion.Wrap(centurion.SDL, err)
}

// DisplayIndex returns the index of the display containing the window's center.
func (w *Window) DisplayIndex() (int, error) {
	index, err := w.res.Get().GetDisplayIndex()
	return index, centurion.Wrap(centurion.SDL, err)
}

// PixelFormat returns the pixel format of the window's display.
func (w *Window) PixelFormat() (PixelFormat, error) {
	format, err := w.res.Get().GetPixelFormat()
	return PixelFormat(format), centurion.Wrap(centurion.SDL, err)
}

// SetIcon sets the window icon.
func (w *Window) SetIcon(icon *Surface) {
	w.res.Get().SetIcon(icon.Get())
}

// Surface returns a handle to the window's framebuffer surface, which the window owns.
func (w *Window) Surface() (*Surface, error) {
	ptr, err := w.res.Get().GetSurface()
	if err != nil {
		return nil, centurion.Wrap(centurion.SDL, err)
	}
	return SurfaceHandle(ptr), nil
}

// UpdateSurface copies the framebuffer surface to the screen.
func (w *Window) UpdateSurface() error {
	return centurion.Wrap(centurion.SDL, w.res.Get().UpdateSurface())
}
