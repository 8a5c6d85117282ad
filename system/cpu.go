package system

// #cgo LDFLAGS: -lSDL2
// #include "SDL2/SDL.h"
import "C"

import "github.com/veandco/go-sdl2/sdl"

// CPUCount returns the number of logical cores.
func CPUCount() int { return sdl.GetCPUCount() }

// CacheLineSize returns the L1 cache line size in bytes.
func CacheLineSize() int { return sdl.GetCPUCacheLineSize() }

// RAM returns the amount of system memory in MiB.
func RAM() int { return sdl.GetSystemRAM() }

// SIMD lists the instruction set extensions detected by SDL.
type SIMD struct {
	RDTSC, AltiVec, MMX, Now3D bool
	SSE, SSE2, SSE3, SSE41     bool
	SSE42, AVX, AVX2, AVX512F  bool
	NEON                       bool
}

// DetectSIMD queries every extension.
func DetectSIMD() SIMD {
	return SIMD{
		RDTSC:   sdl.HasRDTSC(),
		AltiVec: sdl.HasAltiVec(),
		MMX:     sdl.HasMMX(),
		Now3D:   sdl.Has3DNow(),
		SSE:     sdl.HasSSE(),
		SSE2:    sdl.HasSSE2(),
		SSE3:    sdl.HasSSE3(),
		SSE41:   sdl.HasSSE41(),
		SSE42:   sdl.HasSSE42(),
		AVX:     sdl.HasAVX(),
		AVX2:    sdl.HasAVX2(),
		AVX512F: C.SDL_HasAVX512F() == C.SDL_TRUE,
		NEON:    sdl.HasNEON(),
	}
}

// Names returns the detected extensions in a fixed order.
func (s SIMD) Names() []string {
	var names []string
	for _, f := range []struct {
		has  bool
		name string
	}{
		{s.RDTSC, "RDTSC"}, {s.AltiVec, "AltiVec"}, {s.MMX, "MMX"}, {s.Now3D, "3DNow"},
		{s.SSE, "SSE"}, {s.SSE2, "SSE2"}, {s.SSE3, "SSE3"}, {s.SSE41, "SSE4.1"}, {s.SSE42, "SSE4.2"},
		{s.AVX, "AVX"}, {s.AVX2, "AVX2"}, {s.AVX512F, "AVX-512F"}, {s.NEON, "NEON"},
	} {
		if f.has {
			names = append(names, f.name)
		}
	}
	return names
}
