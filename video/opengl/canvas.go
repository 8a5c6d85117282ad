package opengl

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ignite-laboratories/centurion/video"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/core/std"
	"github.com/pkg/errors"
)

// Renderable is drawn by a Canvas once per frame.
type Renderable interface {
	Initialize()
	Render()
	Cleanup()
}

// Canvas drives a window's OpenGL context from a dedicated OS thread.
//
// The context is created, made current, drawn into and deleted on that thread.  Work from other
// goroutines is marshalled onto it with Do.
type Canvas struct {
	ID       uint64
	Window   *video.Window
	Interval SwapInterval

	synchro std.Synchro
	alive   atomic.Bool
	done    chan struct{}
	stop    sync.Once
	version string
}

// NewCanvas prepares a canvas for window; nothing runs until Start.
func NewCanvas(window *video.Window, interval SwapInterval) *Canvas {
	return &Canvas{
		ID:       core.NextID(),
		Window:   window.Handle(),
		Interval: interval,
		synchro:  make(std.Synchro),
		done:     make(chan struct{}),
	}
}

// Start creates the context and begins rendering r.  It returns once the context is ready, or with the
// error that prevented it.
func (c *Canvas) Start(r Renderable) error {
	ready := make(chan error, 1)
	go c.run(r, ready)
	return <-ready
}

// Do runs action on the canvas thread between frames, blocking until it returns.
func (c *Canvas) Do(action func()) {
	if !c.alive.Load() {
		return
	}
	c.synchro.Send(action)
}

// Alive reports whether the canvas is still rendering.
func (c *Canvas) Alive() bool {
	return c.alive.Load()
}

// Version returns the OpenGL version string reported when the context was created.
func (c *Canvas) Version() string {
	return c.version
}

// Stop ends the render loop and waits for the context to be deleted.  It must follow a call to Start.
func (c *Canvas) Stop() {
	c.stop.Do(func() {
		c.alive.Store(false)
	})
	<-c.done
}

func (c *Canvas) run(r Renderable, ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(c.done)

	ctx, err := NewContext(c.Window)
	if err != nil {
		ready <- err
		return
	}
	defer ctx.Close()

	if err := SetSwapInterval(c.Interval); err != nil && c.Interval == SwapAdaptive {
		_ = SetSwapInterval(SwapVSync)
	}
	if err := LoadFunctions(); err != nil {
		ready <- errors.Wrap(err, "loading OpenGL functions")
		return
	}
	c.version = Version()
	core.Verbosef(ModuleName, "[%d.%d] initialized with %s\n", c.Window.ID(), c.ID, c.version)

	c.alive.Store(true)
	ready <- nil

	r.Initialize()
	for c.alive.Load() {
		c.synchro.Engage()
		r.Render()
		Swap(c.Window)

		// 1kHz is plenty for a render loop that is paced by the swap interval
		time.Sleep(time.Millisecond)
	}
	r.Cleanup()
	core.Verbosef(ModuleName, "[%d.%d] stopped\n", c.Window.ID(), c.ID)
}
