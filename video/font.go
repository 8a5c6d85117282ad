package video

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FontStyle mirrors the TTF_STYLE_* bits.
type FontStyle uint32

const (
	StyleNormal        FontStyle = 0x00
	StyleBold          FontStyle = 0x01
	StyleItalic        FontStyle = 0x02
	StyleUnderline     FontStyle = 0x04
	StyleStrikethrough FontStyle = 0x08
)

func (s FontStyle) String() string {
	if s == StyleNormal {
		return "Normal"
	}
	var names []string
	for _, n := range []struct {
		bit  FontStyle
		name string
	}{{StyleBold, "Bold"}, {StyleItalic, "Italic"}, {StyleUnderline, "Underline"}, {StyleStrikethrough, "Strikethrough"}} {
		if s&n.bit != 0 {
			names = append(names, n.name)
		}
	}
	if rest := s &^ (StyleBold | StyleItalic | StyleUnderline | StyleStrikethrough); rest != 0 {
		panic(&centurion.EnumError{Enum: "FontStyle", Value: uint32(rest)})
	}
	return strings.Join(names, "|")
}

// FontHint mirrors the TTF_HINTING_* values.
type FontHint int

const (
	HintNormal FontHint = iota
	HintLight
	HintMono
	HintNone
)

var fontHintNames = map[FontHint]string{
	HintNormal: "Normal",
	HintLight:  "Light",
	HintMono:   "Mono",
	HintNone:   "None",
}

func (h FontHint) String() string {
	return centurion.EnumName(fontHintNames, "FontHint", h)
}

// Font wraps TTF_Font.
type Font struct {
	res  centurion.Resource[*ttf.Font]
	size int
}

// OpenFont loads a TrueType font at the given point size.
func OpenFont(path string, size int) (*Font, error) {
	if size <= 0 {
		return nil, &centurion.Error{Library: centurion.TTF, Message: fmt.Sprintf("invalid font size %d", size)}
	}
	ptr, err := ttf.OpenFont(path, size)
	res, err := centurion.Acquire(centurion.TTF, ptr, err, func(f *ttf.Font) {
		f.Close()
	})
	if err != nil {
		return nil, err
	}
	return &Font{res: res, size: size}, nil
}

// FontHandle aliases a font owned elsewhere.
func FontHandle(ptr *ttf.Font, size int) *Font {
	return &Font{res: centurion.Borrowed(ptr), size: size}
}

// Handle returns a non-owning alias.
func (f *Font) Handle() *Font {
	return &Font{res: f.res.Borrow(), size: f.size}
}

func (f *Font) Get() *ttf.Font { return f.res.Get() }
func (f *Font) Valid() bool    { return f.res.Valid() }
func (f *Font) Close()         { f.res.Close() }

// Size returns the point size the font was opened with.
func (f *Font) Size() int { return f.size }

// Style returns the rendering style bits.
func (f *Font) Style() FontStyle {
	return FontStyle(f.res.Get().GetStyle())
}

// SetStyle replaces the rendering style bits.
func (f *Font) SetStyle(style FontStyle) {
	f.res.Get().SetStyle(int(style))
}

func (f *Font) setStyleBit(bit FontStyle, enabled bool) {
	style := f.Style()
	if enabled {
		style |= bit
	} else {
		style &^= bit
	}
	f.SetStyle(style)
}

func (f *Font) SetBold(enabled bool)          { f.setStyleBit(StyleBold, enabled) }
func (f *Font) SetItalic(enabled bool)        { f.setStyleBit(StyleItalic, enabled) }
func (f *Font) SetUnderline(enabled bool)     { f.setStyleBit(StyleUnderline, enabled) }
func (f *Font) SetStrikethrough(enabled bool) { f.setStyleBit(StyleStrikethrough, enabled) }

func (f *Font) Bold() bool          { return f.Style()&StyleBold != 0 }
func (f *Font) Italic() bool        { return f.Style()&StyleItalic != 0 }
func (f *Font) Underline() bool     { return f.Style()&StyleUnderline != 0 }
func (f *Font) Strikethrough() bool { return f.Style()&StyleStrikethrough != 0 }

// ResetStyle restores the normal style.
func (f *Font) ResetStyle() {
	f.SetStyle(StyleNormal)
}

// Outline returns the outline width in pixels.
func (f *Font) Outline() int {
	return f.res.Get().GetOutline()
}

// SetOutline sets the outline width in pixels; zero disables outlining.
func (f *Font) SetOutline(outline int) {
	f.res.Get().SetOutline(outline)
}

// Hinting returns the hinting mode.
func (f *Font) Hinting() FontHint {
	return FontHint(f.res.Get().GetHinting())
}

// SetHinting sets the hinting mode.
func (f *Font) SetHinting(hint FontHint) {
	f.res.Get().SetHinting(int(hint))
}

// Kerning reports whether kerning is enabled.
func (f *Font) Kerning() bool {
	return f.res.Get().GetKerning()
}

// SetKerning toggles kerning.
func (f *Font) SetKerning(enabled bool) {
	f.res.Get().SetKerning(enabled)
}

func (f *Font) Height() int   { return f.res.Get().Height() }
func (f *Font) Ascent() int   { return f.res.Get().Ascent() }
func (f *Font) Descent() int  { return f.res.Get().Descent() }
func (f *Font) LineSkip() int { return f.res.Get().LineSkip() }
func (f *Font) Faces() int    { return f.res.Get().Faces() }

// FixedWidth reports whether every glyph has the same width.
func (f *Font) FixedWidth() bool {
	return f.res.Get().FaceIsFixedWidth()
}

// FamilyName returns the font family, e.g. "Courier".
func (f *Font) FamilyName() string {
	return f.res.Get().FaceFamilyName()
}

// StyleName returns the face style, e.g. "Bold".
func (f *Font) StyleName() string {
	return f.res.Get().FaceStyleName()
}

// StringSize returns the size text would occupy when rendered.
func (f *Font) StringSize(text string) (Area, error) {
	w, h, err := f.res.Get().SizeUTF8(text)
	if err != nil {
		return Area{}, centurion.Wrap(centurion.TTF, err)
	}
	return Area{Width: int32(w), Height: int32(h)}, nil
}

// RenderSolid renders text quickly, without antialiasing, onto an 8-bit surface.
func (f *Font) RenderSolid(text string, fg Color) (*Surface, error) {
	return f.render(func(font *ttf.Font) (*sdl.Surface, error) {
		return font.RenderUTF8Solid(text, fg.native())
	})
}

// RenderShaded renders antialiased text on an opaque background.
func (f *Font) RenderShaded(text string, fg, bg Color) (*Surface, error) {
	return f.render(func(font *ttf.Font) (*sdl.Surface, error) {
		return font.RenderUTF8Shaded(text, fg.native(), bg.native())
	})
}

// RenderBlended renders antialiased text with alpha blending.
func (f *Font) RenderBlended(text string, fg Color) (*Surface, error) {
	return f.render(func(font *ttf.Font) (*sdl.Surface, error) {
		return font.RenderUTF8Blended(text, fg.native())
	})
}

// RenderBlendedWrapped renders antialiased text, wrapping lines longer than wrap pixels.
func (f *Font) RenderBlendedWrapped(text string, fg Color, wrap int) (*Surface, error) {
	return f.render(func(font *ttf.Font) (*sdl.Surface, error) {
		return font.RenderUTF8BlendedWrapped(text, fg.native(), wrap)
	})
}

// RenderBlendedLatin1 renders ISO-8859-1 encoded text.
func (f *Font) RenderBlendedLatin1(latin1 []byte, fg Color) (*Surface, error) {
	return f.RenderBlended(Latin1ToUTF8(latin1), fg)
}

// RenderBlendedUnicode renders UTF-16 encoded text.
func (f *Font) RenderBlendedUnicode(text UnicodeString, fg Color) (*Surface, error) {
	return f.RenderBlended(text.String(), fg)
}

func (f *Font) render(fn func(*ttf.Font) (*sdl.Surface, error)) (*Surface, error) {
	ptr, err := fn(f.res.Get())
	return adoptSurface(centurion.TTF, ptr, err)
}

// FontCache owns fonts keyed by name and size, so each file/size pair is opened once.
type FontCache struct {
	mutex sync.Mutex
	fonts map[fontKey]*Font
}

type fontKey struct {
	name string
	size int
}

// NewFontCache creates an empty cache.
func NewFontCache() *FontCache {
	return &FontCache{fonts: make(map[fontKey]*Font)}
}

// Load opens path at size and stores it under name, returning a handle.  A font already cached under
// the same name and size is returned without reopening.
func (c *FontCache) Load(name, path string, size int) (*Font, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	key := fontKey{name: name, size: size}
	if f, ok := c.fonts[key]; ok {
		return f.Handle(), nil
	}
	f, err := OpenFont(path, size)
	if err != nil {
		return nil, err
	}
	c.fonts[key] = f
	core.Verbosef(ModuleName, "font [%s@%d] cached\n", name, size)
	return f.Handle(), nil
}

// Get returns a handle to a cached font.
func (c *FontCache) Get(name string, size int) (*Font, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	f, ok := c.fonts[fontKey{name: name, size: size}]
	if !ok {
		return nil, false
	}
	return f.Handle(), true
}

// Len returns the number of cached fonts.
func (c *FontCache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.fonts)
}

// Close closes every cached font.  Handles returned earlier become dangling.
func (c *FontCache) Close() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for key, f := range c.fonts {
		f.Close()
		delete(c.fonts, key)
	}
}
