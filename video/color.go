package video

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/colornames"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA builds a color with alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromImageColor converts any image/color value.
func FromImageColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// FromNorm builds a color from normalized [0, 1] components, clamping out-of-range input.
func FromNorm(r, g, b, a float32) Color {
	return Color{R: denorm(r), G: denorm(g), B: denorm(b), A: denorm(a)}
}

// FromHSV builds an opaque color from hue [0, 360), saturation and value in [0, 100].
func FromHSV(hue, saturation, value float64) Color {
	hue = clamp(hue, 0, 360)
	s := clamp(saturation, 0, 100) / 100
	v := clamp(value, 0, 100) / 100

	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	return fromChroma(hue, chroma, x, v-chroma)
}

// FromHSL builds an opaque color from hue [0, 360), saturation and lightness in [0, 100].
func FromHSL(hue, saturation, lightness float64) Color {
	hue = clamp(hue, 0, 360)
	s := clamp(saturation, 0, 100) / 100
	l := clamp(lightness, 0, 100) / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	return fromChroma(hue, chroma, x, l-chroma/2)
}

func fromChroma(hue, chroma, x, m float64) Color {
	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = chroma, x, 0
	case hue < 120:
		r, g, b = x, chroma, 0
	case hue < 180:
		r, g, b = 0, chroma, x
	case hue < 240:
		r, g, b = 0, x, chroma
	case hue < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return Color{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}

// FromHex parses "#RRGGBB" or "#RRGGBBAA".
func FromHex(hex string) (Color, bool) {
	if !strings.HasPrefix(hex, "#") || (len(hex) != 7 && len(hex) != 9) {
		return Color{}, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return Color{}, false
	}
	if len(hex) == 7 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// Named looks a color up by its CSS/SVG name, e.g. "cornflowerblue".
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return FromImageColor(c), true
}

// Blend linearly interpolates between a and b; bias 0 yields a and 1 yields b.
func Blend(a, b Color, bias float32) Color {
	bias = float32(clamp(float64(bias), 0, 1))
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64((1-bias)*float32(x) + bias*float32(y))))
	}
	return Color{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// WithAlpha returns a copy of c with a different alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Norm returns the normalized [0, 1] components.
func (c Color) Norm() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// Hex formats c as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HexAlpha formats c as "#RRGGBBAA".
func (c Color) HexAlpha() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("Color{r: %d, g: %d, b: %d, a: %d}", c.R, c.G, c.B, c.A)
}

func (c Color) native() sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func colorFrom(c sdl.Color) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func denorm(v float32) uint8 {
	return uint8(math.Round(clamp(float64(v), 0, 1) * 255))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Frequently used named colors.
var (
	Transparent = Color{}
	White       = FromImageColor(colornames.White)
	Black       = FromImageColor(colornames.Black)
	Red         = FromImageColor(colornames.Red)
	Green       = FromImageColor(colornames.Green)
	Lime        = FromImageColor(colornames.Lime)
	Blue        = FromImageColor(colornames.Blue)
	Yellow      = FromImageColor(colornames.Yellow)
	Magenta     = FromImageColor(colornames.Magenta)
	Cyan        = FromImageColor(colornames.Cyan)
	Gray        = FromImageColor(colornames.Gray)
	Orange      = FromImageColor(colornames.Orange)
	Pink        = FromImageColor(colornames.Pink)
	Purple      = FromImageColor(colornames.Purple)
	SteelBlue   = FromImageColor(colornames.Steelblue)
)
