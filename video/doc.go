// Package video wraps SDL2's windowing, rendering, surface and pixel APIs together with SDL_image
// loading and SDL_ttf fonts.
package video

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
)

var ModuleName = "video"

func init() {
	centurion.Report()
	core.SubmoduleReport(centurion.ModuleName, ModuleName)
}

func Report() {}
