package video

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

// DisplayMode describes a display's resolution, format and refresh rate.
type DisplayMode struct {
	Format      PixelFormat
	Size        Area
	RefreshRate int32
}

// DPI holds a display's diagonal, horizontal and vertical dots per inch.
type DPI struct {
	Diagonal, Horizontal, Vertical float32
}

func displayModeFrom(m sdl.DisplayMode) DisplayMode {
	return DisplayMode{Format: PixelFormat(m.Format), Size: Area{Width: m.W, Height: m.H}, RefreshRate: m.RefreshRate}
}

// DisplayCount returns the number of available displays.
func DisplayCount() (int, error) {
	n, err := sdl.GetNumVideoDisplays()
	return n, centurion.Wrap(centurion.SDL, err)
}

// DisplayName returns the name of a display.
func DisplayName(index int) (string, error) {
	name, err := sdl.GetDisplayName(index)
	return name, centurion.Wrap(centurion.SDL, err)
}

// DisplayBounds returns a display's desktop area.
func DisplayBounds(index int) (Rect, error) {
	rect, err := sdl.GetDisplayBounds(index)
	return rectFrom(rect), centurion.Wrap(centurion.SDL, err)
}

// DisplayUsableBounds returns a display's desktop area minus reserved areas such as task bars.
func DisplayUsableBounds(index int) (Rect, error) {
	rect, err := sdl.GetDisplayUsableBounds(index)
	return rectFrom(rect), centurion.Wrap(centurion.SDL, err)
}

// DisplayDPI returns a display's pixel density.
func DisplayDPI(index int) (DPI, error) {
	d, h, v, err := sdl.GetDisplayDPI(index)
	return DPI{Diagonal: d, Horizontal: h, Vertical: v}, centurion.Wrap(centurion.SDL, err)
}

// DesktopDisplayMode returns the mode of the desktop, which stays the same while fullscreen.
func DesktopDisplayMode(index int) (DisplayMode, error) {
	mode, err := sdl.GetDesktopDisplayMode(index)
	return displayModeFrom(mode), centurion.Wrap(centurion.SDL, err)
}

// CurrentDisplayMode returns the mode the display is currently running.
func CurrentDisplayMode(index int) (DisplayMode, error) {
	mode, err := sdl.GetCurrentDisplayMode(index)
	return displayModeFrom(mode), centurion.Wrap(centurion.SDL, err)
}
