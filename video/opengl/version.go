package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

func init() {
	ResetVersion()
}

// GLVersion is the context version requested by Apply.
//
// If not overridden, it defaults to a 3.3 core profile.
var GLVersion struct {
	Major   int
	Minor   int
	Profile Profile
}

// ResetVersion restores the default GLVersion.
func ResetVersion() {
	GLVersion.Major = 3
	GLVersion.Minor = 3
	GLVersion.Profile = ProfileCore
}

// Apply requests GLVersion together with a double buffered, 24-bit depth framebuffer.
func Apply() error {
	for _, a := range []struct {
		attr  Attribute
		value int
	}{
		{ContextMajorVersion, GLVersion.Major},
		{ContextMinorVersion, GLVersion.Minor},
		{ContextProfileMask, int(GLVersion.Profile)},
		{DoubleBuffer, 1},
		{DepthSize, 24},
	} {
		if err := SetAttribute(a.attr, a.value); err != nil {
			return errors.Wrapf(err, "setting %v", a.attr)
		}
	}
	return nil
}

// LoadFunctions resolves the OpenGL entry points for the current context.
func LoadFunctions() error {
	return gl.Init()
}

// Version returns the driver's version string for the current context.  LoadFunctions must have
// succeeded first.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
