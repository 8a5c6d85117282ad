package centurion

// #cgo LDFLAGS: -lSDL2
// #include "SDL2/SDL.h"
import "C"

import "unsafe"

// SDLString owns a C string allocated by SDL, such as the results of SDL_GetBasePath or
// SDL_GetClipboardText, and frees it with SDL_free.
type SDLString struct {
	res Resource[*C.char]
}

// NewSDLString takes ownership of str, which must have been allocated by SDL.  A nil str is valid and
// yields an empty, falsy string.
func NewSDLString(str unsafe.Pointer) *SDLString {
	s := &SDLString{}
	if str != nil {
		s.res = Owned((*C.char)(str), func(p *C.char) {
			C.SDL_free(unsafe.Pointer(p))
		})
	}
	return s
}

// Valid reports whether the string is non-null.
func (s *SDLString) Valid() bool {
	return s.res.Valid()
}

// Copy returns the contents as a Go string; a null string copies as "".
func (s *SDLString) Copy() string {
	if !s.res.Valid() {
		return ""
	}
	return C.GoString(s.res.Get())
}

// Close frees the native string.
func (s *SDLString) Close() {
	s.res.Close()
}
