package video

import (
	"unsafe"

	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
	"github.com/veandco/go-sdl2/sdl"
)

// Renderer wraps SDL_Renderer, the 2D accelerated rendering context of a window.
type Renderer struct {
	res centurion.Resource[*sdl.Renderer]
}

// RendererInfo describes a renderer's capabilities.
type RendererInfo struct {
	Name             string
	Flags            RendererFlags
	Formats          []PixelFormat
	MaxTextureWidth  int32
	MaxTextureHeight int32
}

// NewRenderer creates a renderer for window using the first driver that supports flags.
func NewRenderer(window *Window, flags RendererFlags) (*Renderer, error) {
	ptr, err := sdl.CreateRenderer(window.Get(), -1, uint32(flags))
	res, err := centurion.Acquire(centurion.SDL, ptr, err, func(r *sdl.Renderer) {
		_ = r.Destroy()
	})
	if err != nil {
		return nil, err
	}
	r := &Renderer{res: res}
	if info, err := r.Info(); err == nil {
		core.Verbosef(ModuleName, "renderer [%s] created\n", info.Name)
	}
	return r, nil
}

// RendererHandle aliases a renderer owned elsewhere.
func RendererHandle(ptr *sdl.Renderer) *Renderer {
	return &Renderer{res: centurion.Borrowed(ptr)}
}

// Handle returns a non-owning alias.
func (r *Renderer) Handle() *Renderer {
	return &Renderer{res: r.res.Borrow()}
}

func (r *Renderer) Get() *sdl.Renderer { return r.res.Get() }
func (r *Renderer) Valid() bool        { return r.res.Valid() }
func (r *Renderer) Close()             { r.res.Close() }

// Info queries the renderer's driver name and capabilities.
func (r *Renderer) Info() (RendererInfo, error) {
	info, err := r.res.Get().GetInfo()
	if err != nil {
		return RendererInfo{}, centurion.Wrap(centurion.SDL, err)
	}
	out := RendererInfo{
		Name:             info.Name,
		Flags:            RendererFlags(info.Flags),
		MaxTextureWidth:  info.MaxTextureWidth,
		MaxTextureHeight: info.MaxTextureHeight,
	}
	for i := 0; i < int(info.NumTextureFormats); i++ {
		out.Formats = append(out.Formats, PixelFormat(info.TextureFormats[i]))
	}
	return out, nil
}

// Clear fills the target with the draw color.
func (r *Renderer) Clear() error {
	return centurion.Wrap(centurion.SDL, r.res.Get().Clear())
}

// ClearWith fills the target with c, preserving the draw color.
func (r *Renderer) ClearWith(c Color) error {
	previous, err := r.DrawColor()
	if err != nil {
		return err
	}
	if err := r.SetDrawColor(c); err != nil {
		return err
	}
	if err := r.Clear(); err != nil {
		return err
	}
	return r.SetDrawColor(previous)
}

// Present shows everything rendered since the last call.
func (r *Renderer) Present() {
	r.res.Get().Present()
}

// SetDrawColor sets the color used by draw, fill and clear operations.
func (r *Renderer) SetDrawColor(c Color) error {
	return centurion.Wrap(centurion.SDL, r.res.Get().SetDrawColor(c.R, c.G, c.B, c.A))
}

// DrawColor returns the current draw color.
func (r *Renderer) DrawColor() (Color, error) {
	red, green, blue, alpha, err := r.res.Get().GetDrawColor()
	return RGBA(red, green, blue, alpha), centurion.Wrap(centurion.SDL, err)
}

// SetBlendMode sets the blend mode used by draw and fill operations.
func (r *Renderer) SetBlendMode(mode BlendMode) error {
	return centurion.Wrap(centurion.SDL, r.res.Get().SetDrawBlendMode(sdl.BlendMode(mode)))
}

// BlendMode returns the blend mode used by draw and fill operations.
func (r *Renderer) BlendMode() (BlendMode, error) {
	var mode sdl.BlendMode
	err := r.res.Get().GetDrawBlendMode(&mode)
	return BlendMode(mode), centurion.Wrap(centurion.SDL, err)
}

// DrawPoint draws a single point.
func (r *Renderer) DrawPoint(p Point) error {
	return centurion.Wrap(centurion.SDL, r.res.Get().DrawPoint(p.X, p.Y))
}

// DrawPointF draws a single point with subpixel precision.
func (r *Renderer) DrawPointF(p FPoint) error {
	return centurion.Wrap(centurion.SDL, r.res.Get().DrawPointF(p.X, p.Y))
}

// DrawLine draws a line between two points.
func (r *Renderer) DrawLine(from, to Point) error {
	return centurion.Wrap(centurion.SDL, r.res.Get().DrawLine(from.X, from.Y, to.X, to.Y))
}

// DrawLineF draws a line with subpixel precision.
func (r *Renderer) DrawLineF(from, to FPoint) error {
	return centurion.Wrap(centurion.SDL, r.res.Get().DrawLineF(from.X, from.Y, to.X, to.Y))
}

// DrawRect outlines a rectangle.
func (r *Renderer) DrawRect(rect Rect) error {
	n := rect.native()
	return centurion.Wrap(centurion.SDL, r.res.Get().DrawRect(&n))
}

// DrawRectF outlines a rectangle with subpixel precision.
func (r *Renderer) DrawRectF(rect FRect) error {
	n := rect.native()
	return centurion.Wrap(centurion.SDL, r.res.Get().DrawRectF(&n))
}

// FillRect fills a rectangle.
func (r *Renderer) FillRect(rect Rect) error {
	n := rect.native()
	return centurion.Wrap(centurion.SDL, r.res.Get().FillRect(&n))
}

// FillRectF fills a rectangle with subpixel precision.
func (r *Renderer) FillRectF(rect FRect) error {
	n := rect.native()
	return centurion.Wrap(centurion.SDL, r.res.Get().FillRectF(&n))
}

// Fill fills the whole viewport.
func (r *Renderer) Fill() error {
	return centurion.Wrap(centurion.SDL, r.res.Get().FillRect(nil))
}

// Copy renders src of texture (or all of it) into dst (or the whole target).
func (r *Renderer) Copy(texture *Texture, src, dst *Rect) error {
	return centurion.Wrap(centurion.SDL, r.res.Get().Copy(texture.Get(), nativeRect(src), nativeRect(dst)))
}

// CopyF renders with a subpixel destination.
func (r *Renderer) CopyF(texture *Texture, src *Rect, dst *FRect) error {
	return centurion.Wrap(centurion.SDL, r.res.Get().CopyF(texture.Get(), nativeRect(src), nativeFRect(dst)))
}

// CopyEx renders with rotation around center (nil for dst's center) and flipping.
func (r *Renderer) CopyEx(texture *Texture, src, dst *Rect, angle float64, center *Point, flip Flip) error {
	var c *sdl.Point
	if center != nil {
		n := center.native()
		c = &n
	}
	return centurion.Wrap(centurion.SDL,
		r.res.Get().CopyEx(texture.Get(), nativeRect(src), nativeRect(dst), angle, c, sdl.RendererFlip(flip)))
}

// SetLogicalSize sets a device independent resolution for rendering.
func (r *Renderer) SetLogicalSize(size Area) error {
	return centurion.Wrap(centurion.SDL, r.res.Get().SetLogicalSize(size.Width, size.Height))
}

// LogicalSize returns the device independent resolution, zero when unset.
func (r *Renderer) LogicalSize() Area {
	w, h := r.res.Get().GetLogicalSize()
	return Area{Width: w, Height: h}
}

// SetScale sets the drawing scale.
func (r *Renderer) SetScale(x, y float32) error {
	return centurion.Wrap(centurion.SDL, r.res.Get().SetScale(x, y))
}

// Scale returns the drawing scale.
func (r *Renderer) Scale() (x, y float32) {
	return r.res.Get().GetScale()
}

// SetViewport restricts drawing to rect; nil resets to the whole target.
func (r *Renderer) SetViewport(rect *Rect) error {
	return centurion.Wrap(centurion.SDL, r.res.Get().SetViewport(nativeRect(rect)))
}

// Viewport returns the drawing area.
func (r *Renderer) Viewport() Rect {
	return rectFrom(r.res.Get().GetViewport())
}

// SetClip sets the clip rectangle; nil disables clipping.
func (r *Renderer) SetClip(rect *Rect) error {
	return centurion.Wrap(centurion.SDL, r.res.Get().SetClipRect(nativeRect(rect)))
}

// Clip returns the clip rectangle, if clipping is enabled.
func (r *Renderer) Clip() (Rect, bool) {
	if !r.res.Get().IsClipEnabled() {
		return Rect{}, false
	}
	return rectFrom(r.res.Get().GetClipRect()), true
}

// SetTarget redirects rendering into texture; nil restores the default target.
func (r *Renderer) SetTarget(texture *Texture) error {
	var ptr *sdl.Texture
	if texture != nil {
		ptr = texture.Get()
	}
	return centurion.Wrap(centurion.SDL, r.res.Get().SetRenderTarget(ptr))
}

// Target returns a handle to the current render target; it is invalid for the default target.
func (r *Renderer) Target() *Texture {
	return TextureHandle(r.res.Get().GetRenderTarget())
}

// TargetsSupported reports whether textures can be render targets.
func (r *Renderer) TargetsSupported() bool {
	return r.res.Get().RenderTargetSupported()
}

// OutputSize returns the size of the rendering target in pixels.
func (r *Renderer) OutputSize() (Area, error) {
	w, h, err := r.res.Get().GetOutputSize()
	return Area{Width: w, Height: h}, centurion.Wrap(centurion.SDL, err)
}

// NewTexture creates an owning texture.
func (r *Renderer) NewTexture(format PixelFormat, access TextureAccess, size Area) (*Texture, error) {
	ptr, err := r.res.Get().CreateTexture(uint32(format), int(access), size.Width, size.Height)
	return adoptTexture(centurion.SDL, ptr, err)
}

// NewTextureFromSurface uploads surface into an owning texture.
func (r *Renderer) NewTextureFromSurface(surface *Surface) (*Texture, error) {
	ptr, err := r.res.Get().CreateTextureFromSurface(surface.Get())
	return adoptTexture(centurion.SDL, ptr, err)
}

// ReadPixels copies the pixels inside rect (or the whole target when rect is nil) out of the
// current render target, converted to format.  The returned pitch is the length of one row.
func (r *Renderer) ReadPixels(rect *Rect, format PixelFormat) ([]byte, int, error) {
	area, err := r.OutputSize()
	if err != nil {
		return nil, 0, err
	}
	if rect != nil {
		area = rect.Size()
	}
	if area.Width <= 0 || area.Height <= 0 || format.FourCC() {
		return nil, 0, &centurion.Error{Library: centurion.SDL, Message: "cannot read pixels into " + format.NativeName()}
	}
	pitch := (int(area.Width)*format.BitsPerPixel() + 7) / 8
	pixels := make([]byte, pitch*int(area.Height))
	err = r.res.Get().ReadPixels(nativeRect(rect), uint32(format), unsafe.Pointer(&pixels[0]), pitch)
	if err != nil {
		return nil, 0, centurion.Wrap(centurion.SDL, err)
	}
	return pixels, pitch, nil
}
