package video

// #cgo LDFLAGS: -lSDL2
// #include "SDL2/SDL.h"
import "C"

import (
	"unsafe"

	"github.com/ignite-laboratories/centurion"
)

// SetScaleMode sets the filter used when the texture is scaled.  Requires SDL 2.0.12.
func (t *Texture) SetScaleMode(mode ScaleMode) error {
	code := C.SDL_SetTextureScaleMode(t.native(), C.SDL_ScaleMode(mode))
	return centurion.CheckCode(centurion.SDL, int(code))
}

// ScaleMode returns the filter used when the texture is scaled.  Requires SDL 2.0.12.
func (t *Texture) ScaleMode() (ScaleMode, error) {
	var mode C.SDL_ScaleMode
	code := C.SDL_GetTextureScaleMode(t.native(), &mode)
	if err := centurion.CheckCode(centurion.SDL, int(code)); err != nil {
		return ScaleNearest, err
	}
	return ScaleMode(mode), nil
}

func (t *Texture) native() *C.SDL_Texture {
	return (*C.SDL_Texture)(unsafe.Pointer(t.res.Get()))
}

// ColorMod returns the color multiplier.
func (t *Texture) ColorMod() (Color, error) {
	var r, g, b C.Uint8
	code := C.SDL_GetTextureColorMod(t.native(), &r, &g, &b)
	if err := centurion.CheckCode(centurion.SDL, int(code)); err != nil {
		return White, err
	}
	return RGB(uint8(r), uint8(g), uint8(b)), nil
}

// AlphaMod returns the alpha multiplier.
func (t *Texture) AlphaMod() (uint8, error) {
	var alpha C.Uint8
	code := C.SDL_GetTextureAlphaMod(t.native(), &alpha)
	if err := centurion.CheckCode(centurion.SDL, int(code)); err != nil {
		return 0xFF, err
	}
	return uint8(alpha), nil
}

// BlendMode returns the blend mode used when rendering.
func (t *Texture) BlendMode() (BlendMode, error) {
	var mode C.SDL_BlendMode
	code := C.SDL_GetTextureBlendMode(t.native(), &mode)
	if err := centurion.CheckCode(centurion.SDL, int(code)); err != nil {
		return BlendNone, err
	}
	return BlendMode(mode), nil
}
