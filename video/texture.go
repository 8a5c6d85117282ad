package video

import (
	"sync/atomic"
	"unsafe"

	"github.com/ignite-laboratories/centurion"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// Texture wraps SDL_Texture, a block of pixels owned by a renderer.
type Texture struct {
	res centurion.Resource[*sdl.Texture]
}

func destroyTexture(t *sdl.Texture) { _ = t.Destroy() }

func adoptTexture(lib centurion.Lib, ptr *sdl.Texture, err error) (*Texture, error) {
	res, err := centurion.Acquire(lib, ptr, err, destroyTexture)
	if err != nil {
		return nil, err
	}
	return &Texture{res: res}, nil
}

// TextureHandle aliases a texture owned elsewhere.
func TextureHandle(ptr *sdl.Texture) *Texture {
	return &Texture{res: centurion.Borrowed(ptr)}
}

// Handle returns a non-owning alias.
func (t *Texture) Handle() *Texture {
	return &Texture{res: t.res.Borrow()}
}

func (t *Texture) Get() *sdl.Texture { return t.res.Get() }
func (t *Texture) Valid() bool       { return t.res.Valid() }
func (t *Texture) Close()            { t.res.Close() }

// Share converts the texture into a reference counted one.  t is left null.
func (t *Texture) Share() *SharedTexture {
	shared := &SharedTexture{state: &sharedState{res: t.res.Move()}}
	shared.state.refs.Store(1)
	return shared
}

// Query returns format, access and size in one native call.
func (t *Texture) Query() (PixelFormat, TextureAccess, Area, error) {
	format, access, w, h, err := t.res.Get().Query()
	if err != nil {
		return 0, 0, Area{}, centurion.Wrap(centurion.SDL, err)
	}
	return PixelFormat(format), TextureAccess(access), Area{Width: w, Height: h}, nil
}

// Size returns the texture dimensions, or zero on failure.
func (t *Texture) Size() Area {
	_, _, size, _ := t.Query()
	return size
}

// Format returns the texture's pixel format, or PixelFormatUnknown on failure.
func (t *Texture) Format() PixelFormat {
	format, _, _, _ := t.Query()
	return format
}

// Access returns how the texture may be accessed.
func (t *Texture) Access() TextureAccess {
	_, access, _, _ := t.Query()
	return access
}

// SetColorMod sets the color multiplier used when rendering.
func (t *Texture) SetColorMod(c Color) error {
	return centurion.Wrap(centurion.SDL, t.res.Get().SetColorMod(c.R, c.G, c.B))
}

// SetAlphaMod sets the alpha multiplier used when rendering.
func (t *Texture) SetAlphaMod(alpha uint8) error {
	return centurion.Wrap(centurion.SDL, t.res.Get().SetAlphaMod(alpha))
}

// SetBlendMode sets the blend mode used when rendering.
func (t *Texture) SetBlendMode(mode BlendMode) error {
	return centurion.Wrap(centurion.SDL, t.res.Get().SetBlendMode(sdl.BlendMode(mode)))
}

// Lock exposes the pixels of a streaming texture; rect nil locks the whole texture.
// The returned pitch is the length of one row in bytes.
func (t *Texture) Lock(rect *Rect) ([]byte, int, error) {
	pixels, pitch, err := t.res.Get().Lock(nativeRect(rect))
	if err != nil {
		return nil, 0, centurion.Wrap(centurion.SDL, err)
	}
	return pixels, pitch, nil
}

// Unlock uploads changes made through Lock.
func (t *Texture) Unlock() {
	t.res.Get().Unlock()
}

// Update replaces the pixels inside rect (or the whole texture when rect is nil) with rows of
// pitch bytes taken from pixels.  Works for static and streaming textures alike.
func (t *Texture) Update(rect *Rect, pixels []byte, pitch int) error {
	format, _, size, err := t.Query()
	if err != nil {
		return err
	}
	area := size
	if rect != nil {
		area = rect.Size()
	}
	if area.Width <= 0 || area.Height <= 0 {
		return nil
	}
	need := 1
	if !format.FourCC() {
		row := (int(area.Width)*format.BitsPerPixel() + 7) / 8
		if pitch < row {
			return errors.Errorf("texture update: pitch %d is shorter than a %d byte row", pitch, row)
		}
		need = (int(area.Height)-1)*pitch + row
	}
	if len(pixels) < need {
		return errors.Errorf("texture update: %d bytes cannot fill %d rows of pitch %d", len(pixels), area.Height, pitch)
	}
	return centurion.Wrap(centurion.SDL, t.res.Get().Update(nativeRect(rect), unsafe.Pointer(&pixels[0]), pitch))
}

// IsTarget reports whether the texture can be used as a render target.
func (t *Texture) IsTarget() bool {
	return t.Access() == AccessTarget
}

// IsStreaming reports whether the texture can be locked.
func (t *Texture) IsStreaming() bool {
	return t.Access() == AccessStreaming
}

// SharedTexture is a reference counted texture that may be copied shallowly with Clone.
// The native texture is destroyed when the last clone is closed.
type SharedTexture struct {
	state  *sharedState
	closed bool
}

type sharedState struct {
	res  centurion.Resource[*sdl.Texture]
	refs atomic.Int32
}

// Clone returns another reference to the same texture.  Once the last reference is closed the
// texture is gone, and Clone returns a reference whose Texture is invalid.
func (s *SharedTexture) Clone() *SharedTexture {
	if s == nil || s.state == nil || s.closed {
		return &SharedTexture{state: &sharedState{}, closed: true}
	}
	for {
		refs := s.state.refs.Load()
		if refs <= 0 {
			return &SharedTexture{state: &sharedState{}, closed: true}
		}
		if s.state.refs.CompareAndSwap(refs, refs+1) {
			return &SharedTexture{state: s.state}
		}
	}
}

// Texture returns a handle to the shared texture.
func (s *SharedTexture) Texture() *Texture {
	if s == nil || s.state == nil {
		return &Texture{}
	}
	return &Texture{res: s.state.res.Borrow()}
}

// Refs returns the number of live references.
func (s *SharedTexture) Refs() int {
	if s == nil || s.state == nil {
		return 0
	}
	return int(s.state.refs.Load())
}

// Close drops this reference.  Closing the same reference twice is a no-op.
func (s *SharedTexture) Close() {
	if s == nil || s.state == nil || s.closed {
		return
	}
	s.closed = true
	if s.state.refs.Add(-1) == 0 {
		s.state.res.Close()
	}
}
