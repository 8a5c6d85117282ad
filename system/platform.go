package system

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform identifies the operating system reported by SDL_GetPlatform.
type Platform int

const (
	PlatformUnknown Platform = iota
	Windows
	MacOSX
	Linux
	IOS
	Android
	FreeBSD
	OpenBSD
	NetBSD
	Haiku
	Emscripten
)

var platformNames = map[Platform]string{
	PlatformUnknown: "Unknown",
	Windows:         "Windows",
	MacOSX:          "Mac OS X",
	Linux:           "Linux",
	IOS:             "iOS",
	Android:         "Android",
	FreeBSD:         "FreeBSD",
	OpenBSD:         "OpenBSD",
	NetBSD:          "NetBSD",
	Haiku:           "Haiku",
	Emscripten:      "Emscripten",
}

var platformsByName = func() map[string]Platform {
	m := make(map[string]Platform, len(platformNames))
	for p, name := range platformNames {
		m[name] = p
	}
	return m
}()

func (p Platform) String() string {
	return centurion.EnumName(platformNames, "Platform", p)
}

// PlatformName returns SDL's own name for the running platform.
func PlatformName() string {
	return sdl.GetPlatform()
}

// CurrentPlatform returns the running platform, or PlatformUnknown if SDL names one not mirrored here.
func CurrentPlatform() Platform {
	return platformsByName[sdl.GetPlatform()]
}

func IsWindows() bool { return CurrentPlatform() == Windows }
func IsMacOSX() bool  { return CurrentPlatform() == MacOSX }
func IsLinux() bool   { return CurrentPlatform() == Linux }
func IsAndroid() bool { return CurrentPlatform() == Android }
func IsIOS() bool     { return CurrentPlatform() == IOS }
