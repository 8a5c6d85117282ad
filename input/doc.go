// Package input wraps SDL2's keyboard, mouse, joystick and game controller state.
package input

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
)

var ModuleName = "input"

func init() {
	centurion.Report()
	core.SubmoduleReport(centurion.ModuleName, ModuleName)
}

func Report() {}
