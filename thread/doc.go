// Package thread wraps SDL's mutexes, semaphores and condition variables and offers goroutine-backed
// threads with SDL's join/detach semantics.
package thread

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
)

var ModuleName = "thread"

func init() {
	centurion.Report()
	core.SubmoduleReport(centurion.ModuleName, ModuleName)
}

func Report() {}
