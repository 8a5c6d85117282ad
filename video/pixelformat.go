package video

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

// PixelFormat mirrors SDL_PixelFormatEnum.
type PixelFormat uint32

const (
	PixelFormatUnknown     PixelFormat = 0
	PixelFormatIndex1LSB   PixelFormat = 0x11100100
	PixelFormatIndex1MSB   PixelFormat = 0x11200100
	PixelFormatIndex4LSB   PixelFormat = 0x12100400
	PixelFormatIndex4MSB   PixelFormat = 0x12200400
	PixelFormatIndex8      PixelFormat = 0x13000801
	PixelFormatRGB332      PixelFormat = 0x14110801
	PixelFormatRGB444      PixelFormat = 0x15120c02
	PixelFormatBGR444      PixelFormat = 0x15520c02
	PixelFormatRGB555      PixelFormat = 0x15130f02
	PixelFormatBGR555      PixelFormat = 0x15530f02
	PixelFormatARGB4444    PixelFormat = 0x15321002
	PixelFormatRGBA4444    PixelFormat = 0x15421002
	PixelFormatABGR4444    PixelFormat = 0x15721002
	PixelFormatBGRA4444    PixelFormat = 0x15821002
	PixelFormatARGB1555    PixelFormat = 0x15331002
	PixelFormatRGBA5551    PixelFormat = 0x15441002
	PixelFormatABGR1555    PixelFormat = 0x15731002
	PixelFormatBGRA5551    PixelFormat = 0x15841002
	PixelFormatRGB565      PixelFormat = 0x15151002
	PixelFormatBGR565      PixelFormat = 0x15551002
	PixelFormatRGB24       PixelFormat = 0x17101803
	PixelFormatBGR24       PixelFormat = 0x17401803
	PixelFormatRGB888      PixelFormat = 0x16161804
	PixelFormatRGBX8888    PixelFormat = 0x16261804
	PixelFormatBGR888      PixelFormat = 0x16561804
	PixelFormatBGRX8888    PixelFormat = 0x16661804
	PixelFormatARGB8888    PixelFormat = 0x16362004
	PixelFormatRGBA8888    PixelFormat = 0x16462004
	PixelFormatABGR8888    PixelFormat = 0x16762004
	PixelFormatBGRA8888    PixelFormat = 0x16862004
	PixelFormatARGB2101010 PixelFormat = 0x16372004
	PixelFormatYV12        PixelFormat = 0x32315659
	PixelFormatIYUV        PixelFormat = 0x56555949
	PixelFormatYUY2        PixelFormat = 0x32595559
	PixelFormatUYVY        PixelFormat = 0x59565955
	PixelFormatYVYU        PixelFormat = 0x55595659
	PixelFormatNV12        PixelFormat = 0x3231564e
	PixelFormatNV21        PixelFormat = 0x3132564e
)

var pixelFormatNames = map[PixelFormat]string{
	PixelFormatUnknown:     "Unknown",
	PixelFormatIndex1LSB:   "Index1LSB",
	PixelFormatIndex1MSB:   "Index1MSB",
	PixelFormatIndex4LSB:   "Index4LSB",
	PixelFormatIndex4MSB:   "Index4MSB",
	PixelFormatIndex8:      "Index8",
	PixelFormatRGB332:      "RGB332",
	PixelFormatRGB444:      "RGB444",
	PixelFormatBGR444:      "BGR444",
	PixelFormatRGB555:      "RGB555",
	PixelFormatBGR555:      "BGR555",
	PixelFormatARGB4444:    "ARGB4444",
	PixelFormatRGBA4444:    "RGBA4444",
	PixelFormatABGR4444:    "ABGR4444",
	PixelFormatBGRA4444:    "BGRA4444",
	PixelFormatARGB1555:    "ARGB1555",
	PixelFormatRGBA5551:    "RGBA5551",
	PixelFormatABGR1555:    "ABGR1555",
	PixelFormatBGRA5551:    "BGRA5551",
	PixelFormatRGB565:      "RGB565",
	PixelFormatBGR565:      "BGR565",
	PixelFormatRGB24:       "RGB24",
	PixelFormatBGR24:       "BGR24",
	PixelFormatRGB888:      "RGB888",
	PixelFormatRGBX8888:    "RGBX8888",
	PixelFormatBGR888:      "BGR888",
	PixelFormatBGRX8888:    "BGRX8888",
	PixelFormatARGB8888:    "ARGB8888",
	PixelFormatRGBA8888:    "RGBA8888",
	PixelFormatABGR8888:    "ABGR8888",
	PixelFormatBGRA8888:    "BGRA8888",
	PixelFormatARGB2101010: "ARGB2101010",
	PixelFormatYV12:        "YV12",
	PixelFormatIYUV:        "IYUV",
	PixelFormatYUY2:        "YUY2",
	PixelFormatUYVY:        "UYVY",
	PixelFormatYVYU:        "YVYU",
	PixelFormatNV12:        "NV12",
	PixelFormatNV21:        "NV21",
}

func (f PixelFormat) String() string {
	return centurion.EnumName(pixelFormatNames, "PixelFormat", f)
}

// NativeName is SDL's own name for the format, e.g. "SDL_PIXELFORMAT_RGBA8888".
func (f PixelFormat) NativeName() string {
	return sdl.GetPixelFormatName(uint(f))
}

// BitsPerPixel decodes the bit depth from the format value.
func (f PixelFormat) BitsPerPixel() int {
	return int((f >> 8) & 0xFF)
}

// Indexed reports whether the format uses a palette.
func (f PixelFormat) Indexed() bool {
	if f.FourCC() {
		return false
	}
	t := (f >> 24) & 0x0F
	return t == 1 || t == 2 || t == 3
}

// FourCC reports whether the format is a FourCC (YUV) code.
func (f PixelFormat) FourCC() bool {
	return f != 0 && (f>>28)&0x0F != 1
}

// FormatInfo wraps SDL_PixelFormat, the allocated description of a pixel format.
type FormatInfo struct {
	res centurion.Resource[*sdl.PixelFormat]
}

// NewFormatInfo allocates a format description.
func NewFormatInfo(format PixelFormat) (*FormatInfo, error) {
	ptr, err := sdl.AllocFormat(uint(format))
	res, err := centurion.Acquire(centurion.SDL, ptr, err, func(p *sdl.PixelFormat) {
		p.Free()
	})
	if err != nil {
		return nil, err
	}
	return &FormatInfo{res: res}, nil
}

// FormatInfoHandle aliases a format description owned elsewhere, such as a surface's.
func FormatInfoHandle(ptr *sdl.PixelFormat) *FormatInfo {
	return &FormatInfo{res: centurion.Borrowed(ptr)}
}

// Handle returns a non-owning alias.
func (f *FormatInfo) Handle() *FormatInfo {
	return &FormatInfo{res: f.res.Borrow()}
}

func (f *FormatInfo) Get() *sdl.PixelFormat { return f.res.Get() }
func (f *FormatInfo) Valid() bool           { return f.res.Valid() }
func (f *FormatInfo) Close()                { f.res.Close() }

// Format returns the described pixel format.
func (f *FormatInfo) Format() PixelFormat {
	return PixelFormat(f.res.Get().Format)
}

// BitsPerPixel returns the bit depth.
func (f *FormatInfo) BitsPerPixel() int {
	return int(f.res.Get().BitsPerPixel)
}

// BytesPerPixel returns the byte depth.
func (f *FormatInfo) BytesPerPixel() int {
	return int(f.res.Get().BytesPerPixel)
}

// MapRGB maps an opaque color to a pixel value.
func (f *FormatInfo) MapRGB(c Color) uint32 {
	return sdl.MapRGB(f.res.Get(), c.R, c.G, c.B)
}

// MapRGBA maps a color to a pixel value.
func (f *FormatInfo) MapRGBA(c Color) uint32 {
	return sdl.MapRGBA(f.res.Get(), c.R, c.G, c.B, c.A)
}

// PixelToRGB reads an opaque color from a pixel value.
func (f *FormatInfo) PixelToRGB(pixel uint32) Color {
	r, g, b := sdl.GetRGB(pixel, f.res.Get())
	return RGB(r, g, b)
}

// PixelToRGBA reads a color from a pixel value.
func (f *FormatInfo) PixelToRGBA(pixel uint32) Color {
	r, g, b, a := sdl.GetRGBA(pixel, f.res.Get())
	return RGBA(r, g, b, a)
}
