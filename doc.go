// Package centurion provides typed, ownership-aware wrappers over SDL2 and its satellite libraries.
//
// Every native resource is exposed twice: as an owner, which destroys the resource exactly once when
// closed, and as a handle, which aliases a resource owned elsewhere and never destroys it.  Construction
// of an owner either yields a valid value or an *Error carrying the native library's last error message.
package centurion

import (
	"github.com/ignite-laboratories/core"
)

var ModuleName = "centurion"

func init() {
	core.ModuleReport(ModuleName)
}

func Report() {}
