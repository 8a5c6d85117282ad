package thread

// #cgo LDFLAGS: -lSDL2
// #include "SDL2/SDL.h"
import "C"

import (
	"time"
	"unsafe"

	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

// Condition wraps SDL_cond.  Waits must be made while holding the associated mutex.
type Condition struct {
	res centurion.Resource[*sdl.Cond]
}

func NewCondition() (*Condition, error) {
	res, err := centurion.Acquire(centurion.SDL, sdl.CreateCond(), nil, func(c *sdl.Cond) { c.Destroy() })
	if err != nil {
		return nil, err
	}
	return &Condition{res: res}, nil
}

func ConditionHandle(ptr *sdl.Cond) *Condition {
	return &Condition{res: centurion.Borrowed(ptr)}
}

func (c *Condition) Handle() *Condition { return &Condition{res: c.res.Borrow()} }
func (c *Condition) Get() *sdl.Cond     { return c.res.Get() }
func (c *Condition) Valid() bool        { return c.res.Valid() }
func (c *Condition) Close()             { c.res.Close() }

// Signal wakes one waiter.
func (c *Condition) Signal() error {
	return centurion.Wrap(centurion.SDL, c.res.Get().Signal())
}

// Broadcast wakes every waiter.
func (c *Condition) Broadcast() error {
	return centurion.Wrap(centurion.SDL, c.res.Get().Broadcast())
}

// Wait releases m, blocks until signalled and reacquires m.
func (c *Condition) Wait(m *Mutex) error {
	return centurion.Wrap(centurion.SDL, c.res.Get().Wait(m.Get()))
}

// WaitTimeout is Wait bounded by timeout; LockTimedOut means no signal arrived in time.
func (c *Condition) WaitTimeout(m *Mutex, timeout time.Duration) LockStatus {
	cond := (*C.SDL_cond)(unsafe.Pointer(c.res.Get()))
	return statusOf(C.SDL_CondWaitTimeout(cond, m.native(), milliseconds(timeout)))
}
