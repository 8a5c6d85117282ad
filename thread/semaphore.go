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

// Semaphore wraps SDL_sem.
type Semaphore struct {
	res centurion.Resource[*sdl.Sem]
}

// NewSemaphore creates a semaphore holding tokens.
func NewSemaphore(tokens uint32) (*Semaphore, error) {
	ptr, err := sdl.CreateSemaphore(tokens)
	res, err := centurion.Acquire(centurion.SDL, ptr, err, func(s *sdl.Sem) { s.Destroy() })
	if err != nil {
		return nil, err
	}
	return &Semaphore{res: res}, nil
}

func SemaphoreHandle(ptr *sdl.Sem) *Semaphore {
	return &Semaphore{res: centurion.Borrowed(ptr)}
}

func (s *Semaphore) Handle() *Semaphore { return &Semaphore{res: s.res.Borrow()} }
func (s *Semaphore) Get() *sdl.Sem      { return s.res.Get() }
func (s *Semaphore) Valid() bool        { return s.res.Valid() }
func (s *Semaphore) Close()             { s.res.Close() }

func (s *Semaphore) native() *C.SDL_sem {
	return (*C.SDL_sem)(unsafe.Pointer(s.res.Get()))
}

// Acquire blocks until a token is available and takes it.
func (s *Semaphore) Acquire() error {
	return centurion.Wrap(centurion.SDL, s.res.Get().Wait())
}

// TryAcquire takes a token if one is available.
func (s *Semaphore) TryAcquire() LockStatus {
	return statusOf(C.SDL_SemTryWait(s.native()))
}

// AcquireTimeout waits at most timeout for a token.
func (s *Semaphore) AcquireTimeout(timeout time.Duration) LockStatus {
	return statusOf(C.SDL_SemWaitTimeout(s.native(), milliseconds(timeout)))
}

// Release returns a token.
func (s *Semaphore) Release() error {
	return centurion.Wrap(centurion.SDL, s.res.Get().Post())
}

// Tokens returns the number of available tokens.
func (s *Semaphore) Tokens() uint32 {
	return s.res.Get().Value()
}
