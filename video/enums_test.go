package video

import "testing"

func TestEnumNames(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{BlendAdd.String(), "Add"},
		{ScaleLinear.String(), "Linear"},
		{AccessStreaming.String(), "Streaming"},
		{CursorHand.String(), "Hand"},
		{PixelFormatRGBA8888.String(), "RGBA8888"},
		{(WindowShown | WindowResizable).String(), "Shown|Resizable"},
		{WindowFlags(0).String(), "None"},
		{(StyleBold | StyleItalic).String(), "Bold|Italic"},
		{HintMono.String(), "Mono"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}

func TestEnumNamesRejectUndeclared(t *testing.T) {
	mustPanicWithEnumError(t, func() { _ = BlendMode(0x40).String() })
	mustPanicWithEnumError(t, func() { _ = PixelFormat(0x1234).String() })
	mustPanicWithEnumError(t, func() { _ = WindowFlags(0x40000000).String() })
	mustPanicWithEnumError(t, func() { _ = FontStyle(0x80).String() })
}

func TestPixelFormatDecoding(t *testing.T) {
	if PixelFormatRGBA8888.BitsPerPixel() != 32 {
		t.Fatalf("RGBA8888 should be 32 bits per pixel")
	}
	if !PixelFormatIndex8.Indexed() || PixelFormatRGBA8888.Indexed() {
		t.Fatalf("only palette formats are indexed")
	}
	if PixelFormatRGBA8888.FourCC() || !PixelFormatYVYU.FourCC() {
		t.Fatalf("only YUV formats are FourCC codes")
	}
}

func TestWindowFlagsHas(t *testing.T) {
	flags := WindowFullscreenDesktop | WindowShown
	if !flags.Has(WindowFullscreen) || !flags.Has(WindowFullscreenDesktop) || flags.Has(WindowHidden) {
		t.Fatalf("Has should test every bit of the flag")
	}
}
