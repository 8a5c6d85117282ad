package centurion

// #cgo LDFLAGS: -lSDL2 -lSDL2_image -lSDL2_mixer -lSDL2_ttf
// #include "SDL2/SDL.h"
// #include "SDL2/SDL_image.h"
// #include "SDL2/SDL_mixer.h"
// #include "SDL2/SDL_ttf.h"
import "C"

func versionOf(v *C.SDL_version) Version {
	if v == nil {
		return Version{}
	}
	return Version{Major: int(v.major), Minor: int(v.minor), Patch: int(v.patch)}
}

// CompiledIMGVersion is the SDL_image version the bindings were built against.
func CompiledIMGVersion() Version {
	return Version{Major: C.SDL_IMAGE_MAJOR_VERSION, Minor: C.SDL_IMAGE_MINOR_VERSION, Patch: C.SDL_IMAGE_PATCHLEVEL}
}

// LinkedIMGVersion is the SDL_image version loaded at runtime.
func LinkedIMGVersion() Version {
	return versionOf(C.IMG_Linked_Version())
}

// CompiledMIXVersion is the SDL_mixer version the bindings were built against.
func CompiledMIXVersion() Version {
	return Version{Major: C.SDL_MIXER_MAJOR_VERSION, Minor: C.SDL_MIXER_MINOR_VERSION, Patch: C.SDL_MIXER_PATCHLEVEL}
}

// LinkedMIXVersion is the SDL_mixer version loaded at runtime.
func LinkedMIXVersion() Version {
	return versionOf(C.Mix_Linked_Version())
}

// CompiledTTFVersion is the SDL_ttf version the bindings were built against.
func CompiledTTFVersion() Version {
	return Version{Major: C.SDL_TTF_MAJOR_VERSION, Minor: C.SDL_TTF_MINOR_VERSION, Patch: C.SDL_TTF_PATCHLEVEL}
}

// LinkedTTFVersion is the SDL_ttf version loaded at runtime.
func LinkedTTFVersion() Version {
	return versionOf(C.TTF_Linked_Version())
}
