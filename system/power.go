package system

// #cgo LDFLAGS: -lSDL2
// #include "SDL2/SDL.h"
import "C"

import (
	"time"

	"github.com/ignite-laboratories/centurion"
)

// PowerState mirrors SDL_PowerState.
type PowerState int

const (
	PowerUnknown PowerState = iota
	OnBattery
	NoBattery
	Charging
	Charged
)

var powerStateNames = map[PowerState]string{
	PowerUnknown: "Unknown",
	OnBattery:    "OnBattery",
	NoBattery:    "NoBattery",
	Charging:     "Charging",
	Charged:      "Charged",
}

func (s PowerState) String() string {
	return centurion.EnumName(powerStateNames, "PowerState", s)
}

// PowerInfo is a snapshot of SDL_GetPowerInfo.
type PowerInfo struct {
	State   PowerState
	seconds int
	percent int
}

// Power samples the current battery state.
func Power() PowerInfo {
	var secs, pct C.int
	state := C.SDL_GetPowerInfo(&secs, &pct)
	return PowerInfo{State: PowerState(state), seconds: int(secs), percent: int(pct)}
}

// Remaining returns the estimated battery time left, when SDL can tell.
func (p PowerInfo) Remaining() (time.Duration, bool) {
	if p.seconds < 0 {
		return 0, false
	}
	return time.Duration(p.seconds) * time.Second, true
}

// Percentage returns the battery charge in [0, 100], when SDL can tell.
func (p PowerInfo) Percentage() (int, bool) {
	if p.percent < 0 {
		return 0, false
	}
	return p.percent, true
}

// HasBattery reports whether the machine runs on, or charges, a battery.
func (p PowerInfo) HasBattery() bool {
	return p.State == OnBattery || p.State == Charging || p.State == Charged
}
