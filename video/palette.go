package video

import (
	"unsafe"

	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

// Palette wraps SDL_Palette.
type Palette struct {
	res centurion.Resource[*sdl.Palette]
}

// NewPalette allocates a palette with count entries, all initialised to white.
func NewPalette(count int) (*Palette, error) {
	ptr, err := sdl.AllocPalette(count)
	res, err := centurion.Acquire(centurion.SDL, ptr, err, func(p *sdl.Palette) {
		p.Free()
	})
	if err != nil {
		return nil, err
	}
	return &Palette{res: res}, nil
}

// PaletteHandle aliases a palette owned elsewhere.
func PaletteHandle(ptr *sdl.Palette) *Palette {
	return &Palette{res: centurion.Borrowed(ptr)}
}

func (p *Palette) Get() *sdl.Palette { return p.res.Get() }
func (p *Palette) Valid() bool       { return p.res.Valid() }
func (p *Palette) Close()            { p.res.Close() }

// Len returns the number of entries.
func (p *Palette) Len() int {
	return int(p.res.Get().Ncolors)
}

// At returns the color at index, or false when index is out of range.
func (p *Palette) At(index int) (Color, bool) {
	if index < 0 || index >= p.Len() {
		return Color{}, false
	}
	return colorFrom(p.colors()[index]), true
}

// Set overwrites the color at index.
func (p *Palette) Set(index int, c Color) error {
	if index < 0 || index >= p.Len() {
		return &centurion.Error{Library: centurion.SDL, Message: "palette index out of range"}
	}
	colors := make([]sdl.Color, p.Len())
	copy(colors, p.colors())
	colors[index] = c.native()
	return centurion.Wrap(centurion.SDL, p.res.Get().SetColors(colors))
}

// Colors returns a copy of every entry.
func (p *Palette) Colors() []Color {
	native := p.colors()
	out := make([]Color, len(native))
	for i, c := range native {
		out[i] = colorFrom(c)
	}
	return out
}

func (p *Palette) colors() []sdl.Color {
	ptr := p.res.Get()
	return unsafe.Slice(ptr.Colors, ptr.Ncolors)
}
