// Package audio wraps SDL_mixer: the output device, streamed music, sound effects and mixing channels.
package audio

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
)

var ModuleName = "audio"

func init() {
	centurion.Report()
	core.SubmoduleReport(centurion.ModuleName, ModuleName)
}

func Report() {}
