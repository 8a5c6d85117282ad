package thread

// #cgo LDFLAGS: -lSDL2
// #include "SDL2/SDL.h"
import "C"

import (
	"time"

	"github.com/ignite-laboratories/centurion"
)

// LockStatus mirrors the outcome of SDL's try and timed wait calls.
type LockStatus int

const (
	LockError    LockStatus = -1
	LockSuccess  LockStatus = 0
	LockTimedOut LockStatus = C.SDL_MUTEX_TIMEDOUT
)

var lockStatusNames = map[LockStatus]string{
	LockError:    "Error",
	LockSuccess:  "Success",
	LockTimedOut: "TimedOut",
}

func (s LockStatus) String() string {
	return centurion.EnumName(lockStatusNames, "LockStatus", s)
}

// Ok reports whether the lock or wait succeeded.
func (s LockStatus) Ok() bool { return s == LockSuccess }

func statusOf(code C.int) LockStatus {
	switch {
	case code == 0:
		return LockSuccess
	case code == C.SDL_MUTEX_TIMEDOUT:
		return LockTimedOut
	}
	return LockError
}

// milliseconds clamps a duration to SDL's 32 bit millisecond timeouts.
func milliseconds(d time.Duration) C.Uint32 {
	ms := d.Milliseconds()
	switch {
	case ms < 0:
		return 0
	case ms > int64(^uint32(0)-1):
		return C.Uint32(^uint32(0) - 1)
	}
	return C.Uint32(ms)
}
