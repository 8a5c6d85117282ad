package hint

import (
	"testing"

	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

func TestBoolHint(t *testing.T) {
	defer Clear()
	if !Set(RenderVSync, true).Ok() {
		t.Fatalf("Set failed")
	}
	if sdl.GetHint(RenderVSync.Name) != "1" {
		t.Fatalf("native value = %q", sdl.GetHint(RenderVSync.Name))
	}
	if v, ok := Get(RenderVSync); !v || !ok {
		t.Fatalf("Get = %v, %v", v, ok)
	}
	Set(RenderVSync, false)
	if v, ok := Get(RenderVSync); v || !ok {
		t.Fatalf("Get = %v, %v", v, ok)
	}
}

func TestEnumHint(t *testing.T) {
	defer Clear()
	Set(RenderScaleQuality, Linear)
	if got := sdl.GetHint("SDL_RENDER_SCALE_QUALITY"); got != "linear" {
		t.Fatalf("native value = %q", got)
	}
	if q, ok := Get(RenderScaleQuality); q != Linear || !ok {
		t.Fatalf("Get = %v, %v", q, ok)
	}

	sdl.SetHint("SDL_RENDER_SCALE_QUALITY", "bilinear")
	if _, ok := Get(RenderScaleQuality); ok {
		t.Fatalf("unmapped strings do not parse")
	}
	if GetOr(RenderScaleQuality, Best) != Best {
		t.Fatalf("GetOr should fall back")
	}

	defer func() {
		if _, ok := recover().(*centurion.EnumError); !ok {
			t.Fatalf("setting an unmapped value must panic with an EnumError")
		}
	}()
	Set(RenderScaleQuality, ScaleQuality(7))
}

func TestIntAndStringHints(t *testing.T) {
	defer Clear()
	Set(MouseDoubleClickTime, 250)
	if v, ok := Get(MouseDoubleClickTime); v != 250 || !ok {
		t.Fatalf("Get = %v, %v", v, ok)
	}
	sdl.SetHint(MouseDoubleClickTime.Name, "soon")
	if _, ok := Get(MouseDoubleClickTime); ok {
		t.Fatalf("non-numeric values do not parse")
	}

	Set(AppName, "centurion")
	if v, _ := Get(AppName); v != "centurion" {
		t.Fatalf("Get = %q", v)
	}
}

func TestPriority(t *testing.T) {
	defer Clear()
	if !SetWithPriority(EventLogging, 1, PriorityOverride).Ok() {
		t.Fatalf("override failed")
	}
	if Set(EventLogging, 2).Ok() {
		t.Fatalf("a normal priority value must not replace an override")
	}
	if v, _ := Get(EventLogging); v != 1 {
		t.Fatalf("Get = %d", v)
	}

	Clear()
	if _, ok := Get(EventLogging); ok {
		t.Fatalf("Clear should drop the value")
	}
}

func TestBimap(t *testing.T) {
	if renderDrivers.Len() != 8 || renderDrivers.Key(OpenGLES2) != "opengles2" {
		t.Fatalf("unexpected render driver table")
	}
	if d, ok := renderDrivers.Value("metal"); d != Metal || !ok {
		t.Fatalf("Value = %v, %v", d, ok)
	}
	if PriorityOverride.String() != "Override" || Overscan.String() != "Overscan" {
		t.Fatalf("unexpected names")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("duplicate strings must panic")
		}
	}()
	NewBimap(map[int]string{1: "x", 2: "x"})
}
