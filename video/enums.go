package video

import (
	"strings"

	"github.com/ignite-laboratories/centurion"
)

// BlendMode mirrors SDL_BlendMode.
type BlendMode uint32

const (
	BlendNone  BlendMode = 0x0
	BlendBlend BlendMode = 0x1
	BlendAdd   BlendMode = 0x2
	BlendMod   BlendMode = 0x4
	BlendMul   BlendMode = 0x8
)

var blendModeNames = map[BlendMode]string{
	BlendNone:  "None",
	BlendBlend: "Blend",
	BlendAdd:   "Add",
	BlendMod:   "Mod",
	BlendMul:   "Mul",
}

func (m BlendMode) String() string {
	return centurion.EnumName(blendModeNames, "BlendMode", m)
}

// ScaleMode mirrors SDL_ScaleMode.
type ScaleMode int

const (
	ScaleNearest ScaleMode = iota
	ScaleLinear
	ScaleBest
)

var scaleModeNames = map[ScaleMode]string{
	ScaleNearest: "Nearest",
	ScaleLinear:  "Linear",
	ScaleBest:    "Best",
}

func (m ScaleMode) String() string {
	return centurion.EnumName(scaleModeNames, "ScaleMode", m)
}

// Flip mirrors SDL_RendererFlip.
type Flip uint32

const (
	FlipNone       Flip = 0x0
	FlipHorizontal Flip = 0x1
	FlipVertical   Flip = 0x2
)

var flipNames = map[Flip]string{
	FlipNone:       "None",
	FlipHorizontal: "Horizontal",
	FlipVertical:   "Vertical",
}

func (f Flip) String() string {
	return centurion.EnumName(flipNames, "Flip", f)
}

// TextureAccess mirrors SDL_TextureAccess.
type TextureAccess int

const (
	AccessStatic TextureAccess = iota
	AccessStreaming
	AccessTarget
)

var textureAccessNames = map[TextureAccess]string{
	AccessStatic:    "Static",
	AccessStreaming: "Streaming",
	AccessTarget:    "Target",
}

func (a TextureAccess) String() string {
	return centurion.EnumName(textureAccessNames, "TextureAccess", a)
}

// RendererFlags mirrors SDL_RendererFlags.
type RendererFlags uint32

const (
	RendererSoftware      RendererFlags = 0x1
	RendererAccelerated   RendererFlags = 0x2
	RendererPresentVSync  RendererFlags = 0x4
	RendererTargetTexture RendererFlags = 0x8
)

// WindowFlags mirrors SDL_WindowFlags.
type WindowFlags uint32

const (
	WindowFullscreen        WindowFlags = 0x00000001
	WindowOpenGL            WindowFlags = 0x00000002
	WindowShown             WindowFlags = 0x00000004
	WindowHidden            WindowFlags = 0x00000008
	WindowBorderless        WindowFlags = 0x00000010
	WindowResizable         WindowFlags = 0x00000020
	WindowMinimized         WindowFlags = 0x00000040
	WindowMaximized         WindowFlags = 0x00000080
	WindowInputGrabbed      WindowFlags = 0x00000100
	WindowInputFocus        WindowFlags = 0x00000200
	WindowMouseFocus        WindowFlags = 0x00000400
	WindowForeign           WindowFlags = 0x00000800
	WindowFullscreenDesktop WindowFlags = WindowFullscreen | 0x00001000
	WindowAllowHighDPI      WindowFlags = 0x00002000
	WindowMouseCapture      WindowFlags = 0x00004000
	WindowAlwaysOnTop       WindowFlags = 0x00008000
	WindowSkipTaskbar       WindowFlags = 0x00010000
	WindowUtility           WindowFlags = 0x00020000
	WindowTooltip           WindowFlags = 0x00040000
	WindowPopupMenu         WindowFlags = 0x00080000
	WindowVulkan            WindowFlags = 0x10000000
	WindowMetal             WindowFlags = 0x20000000
)

// ordered so that fullscreen desktop is reported before plain fullscreen
var windowFlagNames = []struct {
	flag WindowFlags
	name string
}{
	{WindowFullscreenDesktop, "FullscreenDesktop"},
	{WindowFullscreen, "Fullscreen"},
	{WindowOpenGL, "OpenGL"},
	{WindowShown, "Shown"},
	{WindowHidden, "Hidden"},
	{WindowBorderless, "Borderless"},
	{WindowResizable, "Resizable"},
	{WindowMinimized, "Minimized"},
	{WindowMaximized, "Maximized"},
	{WindowInputGrabbed, "InputGrabbed"},
	{WindowInputFocus, "InputFocus"},
	{WindowMouseFocus, "MouseFocus"},
	{WindowForeign, "Foreign"},
	{WindowAllowHighDPI, "AllowHighDPI"},
	{WindowMouseCapture, "MouseCapture"},
	{WindowAlwaysOnTop, "AlwaysOnTop"},
	{WindowSkipTaskbar, "SkipTaskbar"},
	{WindowUtility, "Utility"},
	{WindowTooltip, "Tooltip"},
	{WindowPopupMenu, "PopupMenu"},
	{WindowVulkan, "Vulkan"},
	{WindowMetal, "Metal"},
}

// Has reports whether every bit of flag is set.
func (f WindowFlags) Has(flag WindowFlags) bool {
	return f&flag == flag
}

// String lists the set flags separated by '|'.
func (f WindowFlags) String() string {
	var names []string
	rest := f
	for _, n := range windowFlagNames {
		if rest&n.flag == n.flag && n.flag != 0 {
			names = append(names, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		panic(&centurion.EnumError{Enum: "WindowFlags", Value: uint32(rest)})
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

// SystemCursor mirrors SDL_SystemCursor.
type SystemCursor int

const (
	CursorArrow SystemCursor = iota
	CursorIBeam
	CursorWait
	CursorCrosshair
	CursorWaitArrow
	CursorSizeNWSE
	CursorSizeNESW
	CursorSizeWE
	CursorSizeNS
	CursorSizeAll
	CursorNo
	CursorHand
)

var systemCursorNames = map[SystemCursor]string{
	CursorArrow:     "Arrow",
	CursorIBeam:     "IBeam",
	CursorWait:      "Wait",
	CursorCrosshair: "Crosshair",
	CursorWaitArrow: "WaitArrow",
	CursorSizeNWSE:  "SizeNWSE",
	CursorSizeNESW:  "SizeNESW",
	CursorSizeWE:    "SizeWE",
	CursorSizeNS:    "SizeNS",
	CursorSizeAll:   "SizeAll",
	CursorNo:        "No",
	CursorHand:      "Hand",
}

func (c SystemCursor) String() string {
	return centurion.EnumName(systemCursorNames, "SystemCursor", c)
}

// MessageBoxType mirrors SDL_MessageBoxFlags.
type MessageBoxType uint32

const (
	MessageBoxError       MessageBoxType = 0x10
	MessageBoxWarning     MessageBoxType = 0x20
	MessageBoxInformation MessageBoxType = 0x40
)

var messageBoxTypeNames = map[MessageBoxType]string{
	MessageBoxError:       "Error",
	MessageBoxWarning:     "Warning",
	MessageBoxInformation: "Information",
}

func (t MessageBoxType) String() string {
	return centurion.EnumName(messageBoxTypeNames, "MessageBoxType", t)
}
