package opengl

// #cgo LDFLAGS: -lSDL2
// #include "SDL2/SDL.h"
import "C"

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

// Attribute mirrors SDL_GLattr.
type Attribute int

const (
	RedSize Attribute = iota
	GreenSize
	BlueSize
	AlphaSize
	BufferSize
	DoubleBuffer
	DepthSize
	StencilSize
	AccumRedSize
	AccumGreenSize
	AccumBlueSize
	AccumAlphaSize
	Stereo
	MultisampleBuffers
	MultisampleSamples
	AcceleratedVisual
	RetainedBacking
	ContextMajorVersion
	ContextMinorVersion
	ContextEGL
	ContextFlags
	ContextProfileMask
	ShareWithCurrentContext
	FramebufferSRGBCapable
	ContextReleaseBehavior
	ContextResetNotification
	ContextNoError
)

var attributeNames = map[Attribute]string{
	RedSize:                  "RedSize",
	GreenSize:                "GreenSize",
	BlueSize:                 "BlueSize",
	AlphaSize:                "AlphaSize",
	BufferSize:               "BufferSize",
	DoubleBuffer:             "DoubleBuffer",
	DepthSize:                "DepthSize",
	StencilSize:              "StencilSize",
	AccumRedSize:             "AccumRedSize",
	AccumGreenSize:           "AccumGreenSize",
	AccumBlueSize:            "AccumBlueSize",
	AccumAlphaSize:           "AccumAlphaSize",
	Stereo:                   "Stereo",
	MultisampleBuffers:       "MultisampleBuffers",
	MultisampleSamples:       "MultisampleSamples",
	AcceleratedVisual:        "AcceleratedVisual",
	RetainedBacking:          "RetainedBacking",
	ContextMajorVersion:      "ContextMajorVersion",
	ContextMinorVersion:      "ContextMinorVersion",
	ContextEGL:               "ContextEGL",
	ContextFlags:             "ContextFlags",
	ContextProfileMask:       "ContextProfileMask",
	ShareWithCurrentContext:  "ShareWithCurrentContext",
	FramebufferSRGBCapable:   "FramebufferSRGBCapable",
	ContextReleaseBehavior:   "ContextReleaseBehavior",
	ContextResetNotification: "ContextResetNotification",
	ContextNoError:           "ContextNoError",
}

func (a Attribute) String() string {
	return centurion.EnumName(attributeNames, "Attribute", a)
}

// Profile mirrors SDL_GLprofile.
type Profile int

const (
	ProfileCore          Profile = 0x1
	ProfileCompatibility Profile = 0x2
	ProfileES            Profile = 0x4
)

var profileNames = map[Profile]string{
	ProfileCore:          "Core",
	ProfileCompatibility: "Compatibility",
	ProfileES:            "ES",
}

func (p Profile) String() string {
	return centurion.EnumName(profileNames, "Profile", p)
}

// SwapInterval is the number of vertical retraces to wait for between buffer swaps.
type SwapInterval int

const (
	SwapAdaptive  SwapInterval = -1
	SwapImmediate SwapInterval = 0
	SwapVSync     SwapInterval = 1
)

var swapIntervalNames = map[SwapInterval]string{
	SwapAdaptive:  "Adaptive",
	SwapImmediate: "Immediate",
	SwapVSync:     "VSync",
}

func (s SwapInterval) String() string {
	return centurion.EnumName(swapIntervalNames, "SwapInterval", s)
}

// SetAttribute requests a framebuffer or context property for contexts created afterwards.
func SetAttribute(attr Attribute, value int) error {
	return centurion.Wrap(centurion.SDL, sdl.GLSetAttribute(sdl.GLattr(attr), value))
}

// AttributeOf reads back the actual value of attr for the current context.
func AttributeOf(attr Attribute) (int, error) {
	value, err := sdl.GLGetAttribute(sdl.GLattr(attr))
	return value, centurion.Wrap(centurion.SDL, err)
}

// ResetAttributes restores every attribute to SDL's default.
func ResetAttributes() {
	C.SDL_GL_ResetAttributes()
}

// SetSwapInterval sets the swap interval of the current context.  SwapAdaptive fails where late
// swap tearing is unsupported; callers usually fall back to SwapVSync.
func SetSwapInterval(interval SwapInterval) error {
	return centurion.Wrap(centurion.SDL, sdl.GLSetSwapInterval(int(interval)))
}

// CurrentSwapInterval returns the swap interval of the current context.
func CurrentSwapInterval() (SwapInterval, error) {
	interval, err := sdl.GLGetSwapInterval()
	return SwapInterval(interval), centurion.Wrap(centurion.SDL, err)
}

// ExtensionSupported reports whether the current context supports the named extension.
func ExtensionSupported(extension string) bool {
	return sdl.GLExtensionSupported(extension)
}

// LoadLibrary loads an OpenGL library before the first window is created; an empty path loads the
// default library.
func LoadLibrary(path string) error {
	return centurion.Wrap(centurion.SDL, sdl.GLLoadLibrary(path))
}

// UnloadLibrary unloads the library loaded by LoadLibrary.
func UnloadLibrary() {
	sdl.GLUnloadLibrary()
}
