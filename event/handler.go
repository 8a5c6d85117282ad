package event

// #cgo LDFLAGS: -lSDL2
// #include "SDL2/SDL.h"
import "C"

import (
	"time"

	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

// Handler holds the most recently polled event.
type Handler struct {
	current Event
}

// NewHandler creates a handler with no current event.
func NewHandler() *Handler {
	return &Handler{}
}

// Poll takes the next event off the queue, reporting false when the queue was empty.
func (h *Handler) Poll() bool {
	h.current = Wrap(sdl.PollEvent())
	return h.current != nil
}

// Wait blocks until an event arrives or timeout elapses; a non-positive timeout waits indefinitely.
func (h *Handler) Wait(timeout time.Duration) bool {
	if timeout <= 0 {
		h.current = Wrap(sdl.WaitEvent())
	} else {
		h.current = Wrap(sdl.WaitEventTimeout(int(timeout / time.Millisecond)))
	}
	return h.current != nil
}

// Event returns the current event, or nil.
func (h *Handler) Event() Event {
	return h.current
}

// Type returns the type of the current event.
func (h *Handler) Type() (Type, bool) {
	if h.current == nil {
		return 0, false
	}
	return h.current.Type(), true
}

// Empty reports whether there is no current event.
func (h *Handler) Empty() bool {
	return h.current == nil
}

// Reset drops the current event.
func (h *Handler) Reset() {
	h.current = nil
}

// As returns the current event as wrapper T, e.g. As[*KeyboardEvent](h).
func As[T Event](h *Handler) (T, bool) {
	e, ok := h.current.(T)
	return e, ok
}

// Is reports whether the current event is wrapper T.
func Is[T Event](h *Handler) bool {
	_, ok := h.current.(T)
	return ok
}

// Push appends e to the queue.  It reports false without error when an event filter dropped it.
func Push(e Event) (bool, error) {
	filtered, err := sdl.PushEvent(e.Native())
	if err != nil {
		return false, centurion.Wrap(centurion.SDL, err)
	}
	return !filtered, nil
}

// Update pumps pending input from the OS into the queue.
func Update() {
	sdl.PumpEvents()
}

// Flush discards every queued event.
func Flush() {
	sdl.FlushEvents(uint32(First), uint32(Last))
}

// FlushAll pumps pending input from the OS and then discards every queued event.
func FlushAll() {
	Update()
	Flush()
}

// FlushType discards queued events of one type.
func FlushType(t Type) {
	sdl.FlushEvent(uint32(t))
}

// Count returns the number of queued events.
func Count() int {
	return peek(First, Last)
}

// CountOf returns the number of queued events of one type.
func CountOf(t Type) int {
	return peek(t, t)
}

// InQueue reports whether an event of type t is queued.
func InQueue(t Type) bool {
	return sdl.HasEvent(uint32(t))
}

func peek(first, last Type) int {
	n := C.SDL_PeepEvents(nil, 0, C.SDL_PEEKEVENT, C.Uint32(first), C.Uint32(last))
	return max(int(n), 0)
}

// RegisterUserEvents reserves count consecutive event types and returns the first.
func RegisterUserEvents(count int) (Type, error) {
	first := sdl.RegisterEvents(count)
	if first == ^uint32(0) {
		return 0, &centurion.Error{Library: centurion.SDL, Message: "no user event types left"}
	}
	return Type(first), nil
}
