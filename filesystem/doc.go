// Package filesystem wraps SDL_RWops file streams and SDL's application directories.
package filesystem

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
)

var ModuleName = "filesystem"

func init() {
	centurion.Report()
	core.SubmoduleReport(centurion.ModuleName, ModuleName)
}

func Report() {}
