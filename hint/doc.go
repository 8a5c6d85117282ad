// Package hint exposes SDL's configuration hints as typed descriptors.
//
// A Hint pairs the native hint name with the functions that convert between its Go value and the
// string SDL stores, so
//
//	hint.Set(hint.RenderScaleQuality, hint.Linear)
//
// is equivalent to SDL_SetHint("SDL_RENDER_SCALE_QUALITY", "linear").
package hint

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
)

var ModuleName = "hint"

func init() {
	centurion.Report()
	core.SubmoduleReport(centurion.ModuleName, ModuleName)
}

func Report() {}
