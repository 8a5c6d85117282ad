package video

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

// ShowMessageBox shows a modal message box.  parent may be nil.
func ShowMessageBox(kind MessageBoxType, title, message string, parent *Window) error {
	var ptr *sdl.Window
	if parent != nil {
		ptr = parent.Get()
	}
	return centurion.Wrap(centurion.SDL, sdl.ShowSimpleMessageBox(uint32(kind), title, message, ptr))
}
