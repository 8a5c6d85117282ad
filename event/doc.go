// Package event mirrors SDL2's event union with one typed wrapper per event and provides polling and
// dispatching on top of SDL's queue.
package event

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
)

var ModuleName = "event"

func init() {
	centurion.Report()
	core.SubmoduleReport(centurion.ModuleName, ModuleName)
}

func Report() {}
