package video

import (
	"encoding/binary"

	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

// Surface wraps SDL_Surface, a block of pixels in system memory.
type Surface struct {
	res centurion.Resource[*sdl.Surface]
}

func freeSurface(s *sdl.Surface) { s.Free() }

// NewSurface creates an empty surface of the given size and format.
func NewSurface(size Area, format PixelFormat) (*Surface, error) {
	ptr, err := sdl.CreateRGBSurfaceWithFormat(0, size.Width, size.Height, int32(format.BitsPerPixel()), uint32(format))
	return adoptSurface(centurion.SDL, ptr, err)
}

// LoadBMP loads a surface from a BMP file.
func LoadBMP(path string) (*Surface, error) {
	ptr, err := sdl.LoadBMP(path)
	return adoptSurface(centurion.SDL, ptr, err)
}

// SurfaceHandle aliases a surface owned elsewhere, such as a window's.
func SurfaceHandle(ptr *sdl.Surface) *Surface {
	return &Surface{res: centurion.Borrowed(ptr)}
}

func adoptSurface(lib centurion.Lib, ptr *sdl.Surface, err error) (*Surface, error) {
	res, err := centurion.Acquire(lib, ptr, err, freeSurface)
	if err != nil {
		return nil, err
	}
	return &Surface{res: res}, nil
}

// Handle returns a non-owning alias.
func (s *Surface) Handle() *Surface {
	return &Surface{res: s.res.Borrow()}
}

func (s *Surface) Get() *sdl.Surface { return s.res.Get() }
func (s *Surface) Valid() bool       { return s.res.Valid() }
func (s *Surface) Close()            { s.res.Close() }

// Release gives up ownership and returns the native pointer.
func (s *Surface) Release() *sdl.Surface { return s.res.Release() }

// Size returns the surface dimensions.
func (s *Surface) Size() Area {
	ptr := s.res.Get()
	return Area{Width: ptr.W, Height: ptr.H}
}

// Pitch returns the length of a row of pixels in bytes.
func (s *Surface) Pitch() int {
	return int(s.res.Get().Pitch)
}

// Format returns the surface's pixel format.
func (s *Surface) Format() PixelFormat {
	return PixelFormat(s.res.Get().Format.Format)
}

// FormatInfo returns a handle to the surface's format description.
func (s *Surface) FormatInfo() *FormatInfo {
	return FormatInfoHandle(s.res.Get().Format)
}

// Pixels exposes the pixel memory.  Lock the surface first when MustLock reports true.
func (s *Surface) Pixels() []byte {
	return s.res.Get().Pixels()
}

// MustLock reports whether the surface must be locked before its pixels are accessed.
func (s *Surface) MustLock() bool {
	return s.res.Get().MustLock()
}

// Lock locks the surface for direct pixel access.
func (s *Surface) Lock() error {
	return centurion.Wrap(centurion.SDL, s.res.Get().Lock())
}

// Unlock releases a lock taken with Lock.
func (s *Surface) Unlock() {
	s.res.Get().Unlock()
}

// At reads the color at (x, y); false means out of bounds or an unsupported depth.
func (s *Surface) At(x, y int) (Color, bool) {
	pixel, ok := s.pixel(x, y)
	if !ok {
		return Color{}, false
	}
	return s.FormatInfo().PixelToRGBA(pixel), true
}

// Set writes the color at (x, y); false means out of bounds or an unsupported depth.
func (s *Surface) Set(x, y int, c Color) bool {
	offset, bpp, ok := s.offset(x, y)
	if !ok {
		return false
	}
	pixel := s.FormatInfo().MapRGBA(c)
	pixels := s.Pixels()
	switch bpp {
	case 1:
		pixels[offset] = uint8(pixel)
	case 2:
		binary.LittleEndian.PutUint16(pixels[offset:], uint16(pixel))
	case 3:
		pixels[offset] = uint8(pixel)
		pixels[offset+1] = uint8(pixel >> 8)
		pixels[offset+2] = uint8(pixel >> 16)
	case 4:
		binary.LittleEndian.PutUint32(pixels[offset:], pixel)
	}
	return true
}

func (s *Surface) pixel(x, y int) (uint32, bool) {
	offset, bpp, ok := s.offset(x, y)
	if !ok {
		return 0, false
	}
	pixels := s.Pixels()
	switch bpp {
	case 1:
		return uint32(pixels[offset]), true
	case 2:
		return uint32(binary.LittleEndian.Uint16(pixels[offset:])), true
	case 3:
		return uint32(pixels[offset]) | uint32(pixels[offset+1])<<8 | uint32(pixels[offset+2])<<16, true
	default:
		return binary.LittleEndian.Uint32(pixels[offset:]), true
	}
}

func (s *Surface) offset(x, y int) (offset, bpp int, ok bool) {
	size := s.Size()
	if x < 0 || y < 0 || x >= int(size.Width) || y >= int(size.Height) {
		return 0, 0, false
	}
	bpp = int(s.res.Get().Format.BytesPerPixel)
	if bpp < 1 || bpp > 4 {
		return 0, 0, false
	}
	return y*s.Pitch() + x*bpp, bpp, true
}

// SetAlphaMod sets the alpha multiplier used in blits.
func (s *Surface) SetAlphaMod(alpha uint8) error {
	return centurion.Wrap(centurion.SDL, s.res.Get().SetAlphaMod(alpha))
}

// AlphaMod returns the alpha multiplier.
func (s *Surface) AlphaMod() (uint8, error) {
	alpha, err := s.res.Get().GetAlphaMod()
	return alpha, centurion.Wrap(centurion.SDL, err)
}

// SetColorMod sets the color multiplier used in blits.
func (s *Surface) SetColorMod(c Color) error {
	return centurion.Wrap(centurion.SDL, s.res.Get().SetColorMod(c.R, c.G, c.B))
}

// ColorMod returns the color multiplier.
func (s *Surface) ColorMod() (Color, error) {
	r, g, b, err := s.res.Get().GetColorMod()
	return RGB(r, g, b), centurion.Wrap(centurion.SDL, err)
}

// SetBlendMode sets the blend mode used in blits.
func (s *Surface) SetBlendMode(mode BlendMode) error {
	return centurion.Wrap(centurion.SDL, s.res.Get().SetBlendMode(sdl.BlendMode(mode)))
}

// BlendMode returns the blend mode used in blits.
func (s *Surface) BlendMode() (BlendMode, error) {
	mode, err := s.res.Get().GetBlendMode()
	return BlendMode(mode), centurion.Wrap(centurion.SDL, err)
}

// SetColorKey makes pixels of the given color transparent; nil disables the color key.
func (s *Surface) SetColorKey(key *Color) error {
	if key == nil {
		return centurion.Wrap(centurion.SDL, s.res.Get().SetColorKey(false, 0))
	}
	return centurion.Wrap(centurion.SDL, s.res.Get().SetColorKey(true, s.FormatInfo().MapRGB(*key)))
}

// ColorKey returns the transparent color, if one is set.
func (s *Surface) ColorKey() (Color, bool) {
	key, err := s.res.Get().GetColorKey()
	if err != nil {
		return Color{}, false
	}
	return s.FormatInfo().PixelToRGB(key), true
}

// SetRLE toggles run-length acceleration.
func (s *Surface) SetRLE(enabled bool) error {
	return centurion.Wrap(centurion.SDL, s.res.Get().SetRLE(enabled))
}

// Fill fills rect, or the whole surface when rect is nil.
func (s *Surface) Fill(rect *Rect, c Color) error {
	return centurion.Wrap(centurion.SDL, s.res.Get().FillRect(nativeRect(rect), s.FormatInfo().MapRGBA(c)))
}

// Blit copies src (or all of s) onto dst at dstRect (or its origin).
func (s *Surface) Blit(src *Rect, dst *Surface, dstRect *Rect) error {
	return centurion.Wrap(centurion.SDL, s.res.Get().Blit(nativeRect(src), dst.Get(), nativeRect(dstRect)))
}

// BlitScaled copies with scaling to fill dstRect.
func (s *Surface) BlitScaled(src *Rect, dst *Surface, dstRect *Rect) error {
	return centurion.Wrap(centurion.SDL, s.res.Get().BlitScaled(nativeRect(src), dst.Get(), nativeRect(dstRect)))
}

// Convert returns an owning copy of the surface in another format.
func (s *Surface) Convert(format PixelFormat) (*Surface, error) {
	ptr, err := s.res.Get().ConvertFormat(uint32(format), 0)
	converted, err := adoptSurface(centurion.SDL, ptr, err)
	if err != nil {
		return nil, err
	}
	if mode, err := s.BlendMode(); err == nil {
		_ = converted.SetBlendMode(mode)
	}
	return converted, nil
}

// Duplicate returns an owning deep copy.
func (s *Surface) Duplicate() (*Surface, error) {
	return s.Convert(s.Format())
}

// SaveBMP writes the surface as a BMP file.
func (s *Surface) SaveBMP(path string) error {
	return centurion.Wrap(centurion.SDL, s.res.Get().SaveBMP(path))
}
