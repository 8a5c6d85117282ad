package video

// #cgo LDFLAGS: -lSDL2 -lSDL2_image
// #include <stdlib.h>
// #include "SDL2/SDL_image.h"
import "C"

import (
	"unsafe"

	"github.com/ignite-laboratories/centurion"
)

// SaveJPG writes the surface as a JPEG file with quality in [0, 100].  Requires SDL_image 2.0.2.
func (s *Surface) SaveJPG(path string, quality int) error {
	if !s.Valid() {
		return &centurion.Error{Library: centurion.IMG, Message: "cannot save a null surface"}
	}
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	code := C.IMG_SaveJPG((*C.SDL_Surface)(unsafe.Pointer(s.Get())), cpath, C.int(quality))
	return centurion.CheckCode(centurion.IMG, int(code))
}
