package video

import "testing"

func TestColorConstructors(t *testing.T) {
	cases := []struct {
		name string
		got  Color
		want Color
	}{
		{"hsv red", FromHSV(0, 100, 100), RGB(255, 0, 0)},
		{"hsv green", FromHSV(120, 100, 100), RGB(0, 255, 0)},
		{"hsl blue", FromHSL(240, 100, 50), RGB(0, 0, 255)},
		{"hsv black", FromHSV(200, 50, 0), RGB(0, 0, 0)},
		{"norm", FromNorm(1, 0, 1, 0), RGBA(255, 0, 255, 0)},
		{"blend midpoint", Blend(Black, White, 0.5), RGB(128, 128, 128)},
		{"blend clamps", Blend(Black, White, 2), White},
		{"with alpha", Red.WithAlpha(10), RGBA(255, 0, 0, 10)},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestColorHex(t *testing.T) {
	c, ok := FromHex("#FF8000")
	if !ok || c != RGB(255, 128, 0) {
		t.Fatalf("FromHex(#FF8000) = %v, %v", c, ok)
	}
	c, ok = FromHex("#10203040")
	if !ok || c != RGBA(0x10, 0x20, 0x30, 0x40) {
		t.Fatalf("FromHex(#10203040) = %v, %v", c, ok)
	}
	if c.HexAlpha() != "#10203040" || c.Hex() != "#102030" {
		t.Fatalf("unexpected hex output %s / %s", c.Hex(), c.HexAlpha())
	}
	for _, bad := range []string{"", "FF8000", "#FF80", "#GG0000"} {
		if _, ok := FromHex(bad); ok {
			t.Errorf("FromHex(%q) should fail", bad)
		}
	}
}

func TestNamedColors(t *testing.T) {
	c, ok := Named("CornflowerBlue")
	if !ok || c != RGB(100, 149, 237) {
		t.Fatalf("Named(CornflowerBlue) = %v, %v", c, ok)
	}
	if _, ok := Named("not-a-color"); ok {
		t.Fatalf("unknown names should not resolve")
	}
}

func TestColorImplementsImageColor(t *testing.T) {
	r, g, b, a := RGB(255, 0, 0).RGBA()
	if r != 0xFFFF || g != 0 || b != 0 || a != 0xFFFF {
		t.Fatalf("RGBA() = %x %x %x %x", r, g, b, a)
	}
	if FromImageColor(RGBA(1, 2, 3, 255)) != RGBA(1, 2, 3, 255) {
		t.Fatalf("FromImageColor should round trip an opaque color")
	}
}
