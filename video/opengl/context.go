package opengl

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/centurion/video"
	"github.com/ignite-laboratories/core"
	"github.com/veandco/go-sdl2/sdl"
)

// Context wraps SDL_GLContext.
type Context struct {
	res centurion.Resource[sdl.GLContext]
}

// NewContext creates a context for window and makes it current on the calling thread.  The window must
// have been created with video.WindowOpenGL.
func NewContext(window *video.Window) (*Context, error) {
	native, err := window.Get().GLCreateContext()
	res, err := centurion.Acquire(centurion.SDL, native, err, sdl.GLDeleteContext)
	if err != nil {
		return nil, err
	}
	core.Verbosef(ModuleName, "context created for window [%d]\n", window.ID())
	return &Context{res: res}, nil
}

// ContextHandle aliases a context owned elsewhere.  A nil native context yields an invalid handle.
func ContextHandle(native sdl.GLContext) *Context {
	return &Context{res: centurion.Borrowed(native)}
}

// Handle returns a non-owning alias.
func (c *Context) Handle() *Context {
	return &Context{res: c.res.Borrow()}
}

// Get returns the native context, or nil.
func (c *Context) Get() sdl.GLContext { return c.res.Get() }

func (c *Context) Valid() bool { return c.res.Valid() }
func (c *Context) Close()      { c.res.Close() }

// MakeCurrent binds the context to window on the calling thread.
func (c *Context) MakeCurrent(window *video.Window) error {
	return centurion.Wrap(centurion.SDL, window.Get().GLMakeCurrent(c.Get()))
}

// Swap presents window's back buffer.
func Swap(window *video.Window) {
	window.Get().GLSwap()
}

// DrawableSize returns the size of window's drawable in pixels, which differs from the window size on
// high-DPI displays.
func DrawableSize(window *video.Window) video.Area {
	w, h := window.Get().GLGetDrawableSize()
	return video.Area{Width: w, Height: h}
}
