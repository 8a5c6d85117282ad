package system

// #cgo LDFLAGS: -lSDL2
// #include <stdlib.h>
// #include "SDL2/SDL.h"
import "C"

import (
	"unsafe"

	"github.com/ignite-laboratories/centurion"
)

// SetClipboard replaces the clipboard contents.  The video subsystem must be initialised.
func SetClipboard(text string) error {
	str := C.CString(text)
	defer C.free(unsafe.Pointer(str))
	return centurion.CheckCode(centurion.SDL, int(C.SDL_SetClipboardText(str)))
}

// Clipboard returns the clipboard contents.
func Clipboard() (string, error) {
	str := centurion.NewSDLString(unsafe.Pointer(C.SDL_GetClipboardText()))
	defer str.Close()
	if !str.Valid() {
		return "", centurion.SDLError()
	}
	return str.Copy(), nil
}

// HasClipboard reports whether the clipboard holds non-empty text.
func HasClipboard() bool {
	return C.SDL_HasClipboardText() == C.SDL_TRUE
}
