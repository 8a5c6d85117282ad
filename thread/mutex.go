package thread

// #cgo LDFLAGS: -lSDL2
// #include "SDL2/SDL.h"
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
)

// Mutex wraps SDL_mutex, a recursive mutex.
//
// SDL tracks the owner of a mutex by OS thread, so the calling goroutine is pinned to its thread from
// Lock until the matching Unlock.
type Mutex struct {
	res centurion.Resource[*sdl.Mutex]
}

// NewMutex creates an unlocked mutex.
func NewMutex() (*Mutex, error) {
	ptr, err := sdl.CreateMutex()
	res, err := centurion.Acquire(centurion.SDL, ptr, err, func(m *sdl.Mutex) { m.Destroy() })
	if err != nil {
		return nil, err
	}
	return &Mutex{res: res}, nil
}

// MutexHandle aliases a mutex owned elsewhere.
func MutexHandle(ptr *sdl.Mutex) *Mutex {
	return &Mutex{res: centurion.Borrowed(ptr)}
}

func (m *Mutex) Handle() *Mutex  { return &Mutex{res: m.res.Borrow()} }
func (m *Mutex) Get() *sdl.Mutex { return m.res.Get() }
func (m *Mutex) Valid() bool     { return m != nil && m.res.Valid() }
func (m *Mutex) Close()          { m.res.Close() }

func (m *Mutex) native() *C.SDL_mutex {
	return (*C.SDL_mutex)(unsafe.Pointer(m.res.Get()))
}

// Lock blocks until the mutex is acquired.
func (m *Mutex) Lock() error {
	runtime.LockOSThread()
	if err := m.res.Get().Lock(); err != nil {
		runtime.UnlockOSThread()
		return centurion.Wrap(centurion.SDL, err)
	}
	return nil
}

// TryLock acquires the mutex without blocking, reporting LockTimedOut when it is held elsewhere.
func (m *Mutex) TryLock() LockStatus {
	runtime.LockOSThread()
	status := statusOf(C.SDL_TryLockMutex(m.native()))
	if status != LockSuccess {
		runtime.UnlockOSThread()
	}
	return status
}

// Unlock releases one level of ownership.
func (m *Mutex) Unlock() error {
	if !m.Valid() {
		return &centurion.Error{Library: centurion.SDL, Message: "cannot unlock a null mutex"}
	}
	err := m.res.Get().Unlock()
	if err != nil {
		return centurion.Wrap(centurion.SDL, err)
	}
	runtime.UnlockOSThread()
	return nil
}

// Scoped holds a mutex until Release is called.
type Scoped struct {
	mutex  *Mutex
	locked bool
}

// ScopedLock locks m and returns the guard that unlocks it.
func ScopedLock(m *Mutex) (*Scoped, error) {
	if err := m.Lock(); err != nil {
		return nil, err
	}
	return &Scoped{mutex: m, locked: true}, nil
}

// TryLock attempts to lock m without blocking.  Locked reports whether the guard holds the mutex.
func TryLock(m *Mutex) *Scoped {
	status := m.TryLock()
	return &Scoped{mutex: m, locked: status == LockSuccess}
}

func (s *Scoped) Locked() bool { return s.locked }

// Release unlocks the mutex if the guard holds it.  Calling it again is a no-op.
// A failed unlock is reported through centurion.Logger.
func (s *Scoped) Release() {
	if !s.locked {
		return
	}
	s.locked = false
	if err := s.mutex.Unlock(); err != nil {
		centurion.Logger().Warn("scoped unlock failed", zap.Error(err))
	}
}
