package centurion

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Version is a semantic library version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// CompiledSDLVersion is the SDL version the bindings were built against.
func CompiledSDLVersion() Version {
	return Version{Major: sdl.MAJOR_VERSION, Minor: sdl.MINOR_VERSION, Patch: sdl.PATCHLEVEL}
}

// LinkedSDLVersion is the SDL version loaded at runtime.
func LinkedSDLVersion() Version {
	var v sdl.Version
	sdl.GetVersion(&v)
	return Version{Major: int(v.Major), Minor: int(v.Minor), Patch: int(v.Patch)}
}

// Compare returns -1, 0 or 1 when v is older than, equal to or newer than other.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return sign(v.Major - other.Major)
	case v.Minor != other.Minor:
		return sign(v.Minor - other.Minor)
	default:
		return sign(v.Patch - other.Patch)
	}
}

// AtLeast reports whether v is the same as or newer than major.minor.patch.
func (v Version) AtLeast(major, minor, patch int) bool {
	return v.Compare(Version{Major: major, Minor: minor, Patch: patch}) >= 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
