package thread

// #cgo LDFLAGS: -lSDL2
// #include "SDL2/SDL.h"
import "C"

import (
	"runtime"
	"sync"
	"time"

	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
)

// Priority mirrors SDL_ThreadPriority.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
	PriorityTimeCritical
)

var priorityNames = map[Priority]string{
	PriorityLow:          "Low",
	PriorityNormal:       "Normal",
	PriorityHigh:         "High",
	PriorityTimeCritical: "TimeCritical",
}

func (p Priority) String() string {
	return centurion.EnumName(priorityNames, "Priority", p)
}

// SetCurrentPriority changes the priority of the calling goroutine's OS thread.  The goroutine stays
// pinned to that thread afterwards so the setting keeps applying to it.
func SetCurrentPriority(p Priority) error {
	runtime.LockOSThread()
	return centurion.CheckCode(centurion.SDL, int(C.SDL_SetThreadPriority(C.SDL_ThreadPriority(p))))
}

// CurrentID returns the native identifier of the calling OS thread.
func CurrentID() uint64 {
	return uint64(C.SDL_ThreadID())
}

// Sleep blocks the calling goroutine for at least d.
func Sleep(d time.Duration) {
	time.Sleep(d)
}

// Thread is a named unit of concurrent work.
//
// It is backed by a goroutine rather than SDL_CreateThread, but keeps SDL's contract: a thread is
// joinable until it is either joined or detached, and both operations take effect once.
type Thread struct {
	ID   uint64
	Name string

	done     chan struct{}
	mutex    sync.Mutex
	joined   bool
	detached bool
}

// Start runs task on a new thread.
func Start(name string, task func()) *Thread {
	t := &Thread{
		ID:   uint64(core.NextID()),
		Name: name,
		done: make(chan struct{}),
	}
	go func() {
		defer close(t.done)
		core.Verbosef(ModuleName, "thread %d [%s] started\n", t.ID, t.Name)
		task()
		core.Verbosef(ModuleName, "thread %d [%s] finished\n", t.ID, t.Name)
	}()
	return t
}

// Joinable reports whether the thread has been neither joined nor detached.
func (t *Thread) Joinable() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return !t.joined && !t.detached
}

// Join waits for the thread to finish.  Joining a detached or already joined thread is a no-op.
func (t *Thread) Join() {
	t.mutex.Lock()
	if t.joined || t.detached {
		t.mutex.Unlock()
		return
	}
	t.joined = true
	t.mutex.Unlock()
	<-t.done
}

// Detach lets the thread finish on its own.  Detaching a joined or detached thread is a no-op.
func (t *Thread) Detach() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.joined || t.detached {
		return
	}
	t.detached = true
}

// Finished reports whether the task has returned.
func (t *Thread) Finished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}
