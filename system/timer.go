package system

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// Ticks returns the time elapsed since SDL was initialised.
func Ticks() time.Duration {
	return time.Duration(sdl.GetTicks()) * time.Millisecond
}

// Counter returns the high resolution counter; see Frequency.
func Counter() uint64 {
	return sdl.GetPerformanceCounter()
}

// Frequency returns the number of Counter increments per second.
func Frequency() uint64 {
	return sdl.GetPerformanceFrequency()
}

// Since converts the difference between the current Counter and start into a duration.
func Since(start uint64) time.Duration {
	elapsed := Counter() - start
	freq := Frequency()
	seconds := elapsed / freq
	rest := elapsed % freq
	return time.Duration(seconds)*time.Second + time.Duration(rest*uint64(time.Second)/freq)
}

// Delay waits at least d using SDL_Delay, which blocks the OS thread.
func Delay(d time.Duration) {
	sdl.Delay(uint32(d.Milliseconds()))
}
