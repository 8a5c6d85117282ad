package filesystem

// #cgo LDFLAGS: -lSDL2
// #include <stdlib.h>
// #include "SDL2/SDL.h"
import "C"

import (
	"unsafe"

	"github.com/ignite-laboratories/centurion"
)

// BasePath returns the directory the application was run from, with a trailing separator.
func BasePath() (string, error) {
	str := centurion.NewSDLString(unsafe.Pointer(C.SDL_GetBasePath()))
	defer str.Close()
	if !str.Valid() {
		return "", centurion.SDLError()
	}
	return str.Copy(), nil
}

// PreferredPath returns the user-writable directory for org and app, creating it if needed.
func PreferredPath(org, app string) (string, error) {
	corg := C.CString(org)
	defer C.free(unsafe.Pointer(corg))
	capp := C.CString(app)
	defer C.free(unsafe.Pointer(capp))

	str := centurion.NewSDLString(unsafe.Pointer(C.SDL_GetPrefPath(corg, capp)))
	defer str.Close()
	if !str.Valid() {
		return "", centurion.SDLError()
	}
	return str.Copy(), nil
}
