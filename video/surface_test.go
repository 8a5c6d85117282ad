package video

import (
	"path/filepath"
	"testing"
)

func newTestSurface(t *testing.T) *Surface {
	t.Helper()
	requireVideo(t)
	s, err := NewSurface(Area{Width: 4, Height: 3}, PixelFormatRGBA8888)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestSurfacePixels(t *testing.T) {
	s := newTestSurface(t)

	if s.Size() != (Area{Width: 4, Height: 3}) || s.Format() != PixelFormatRGBA8888 {
		t.Fatalf("unexpected surface shape %v %v", s.Size(), s.Format())
	}
	if err := s.Fill(nil, Red); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if c, ok := s.At(3, 2); !ok || c != Red {
		t.Fatalf("At(3, 2) = %v, %v", c, ok)
	}
	if !s.Set(1, 1, Blue) {
		t.Fatalf("Set inside bounds should succeed")
	}
	if c, _ := s.At(1, 1); c != Blue {
		t.Fatalf("At(1, 1) = %v", c)
	}
	if s.Set(4, 0, Blue) {
		t.Fatalf("Set outside bounds should fail")
	}
	if _, ok := s.At(-1, 0); ok {
		t.Fatalf("At outside bounds should fail")
	}
}

func TestSurfaceState(t *testing.T) {
	s := newTestSurface(t)

	if err := s.SetAlphaMod(100); err != nil {
		t.Fatalf("SetAlphaMod: %v", err)
	}
	if a, err := s.AlphaMod(); err != nil || a != 100 {
		t.Fatalf("AlphaMod = %d, %v", a, err)
	}
	if err := s.SetBlendMode(BlendAdd); err != nil {
		t.Fatalf("SetBlendMode: %v", err)
	}
	if m, err := s.BlendMode(); err != nil || m != BlendAdd {
		t.Fatalf("BlendMode = %v, %v", m, err)
	}
	if _, ok := s.ColorKey(); ok {
		t.Fatalf("a new surface has no color key")
	}
	key := Green
	if err := s.SetColorKey(&key); err != nil {
		t.Fatalf("SetColorKey: %v", err)
	}
	if c, ok := s.ColorKey(); !ok || c != Green {
		t.Fatalf("ColorKey = %v, %v", c, ok)
	}
}

func TestSurfaceConvertAndSave(t *testing.T) {
	s := newTestSurface(t)
	if err := s.Fill(nil, Yellow); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	converted, err := s.Convert(PixelFormatARGB8888)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	defer converted.Close()
	if converted.Format() != PixelFormatARGB8888 {
		t.Fatalf("converted format = %v", converted.Format())
	}
	if c, _ := converted.At(0, 0); c != Yellow {
		t.Fatalf("converted pixel = %v", c)
	}

	path := filepath.Join(t.TempDir(), "surface.bmp")
	if err := converted.SaveBMP(path); err != nil {
		t.Fatalf("SaveBMP: %v", err)
	}
	loaded, err := LoadBMP(path)
	if err != nil {
		t.Fatalf("LoadBMP: %v", err)
	}
	defer loaded.Close()
	if loaded.Size() != s.Size() {
		t.Fatalf("loaded size = %v", loaded.Size())
	}
}

func TestSurfaceSaveJPG(t *testing.T) {
	s := newTestSurface(t)
	if err := s.Fill(nil, Red); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	path := filepath.Join(t.TempDir(), "surface.jpg")
	if err := s.SaveJPG(path, 90); err != nil {
		t.Fatalf("SaveJPG: %v", err)
	}
	loaded, err := LoadSurface(path)
	if err != nil {
		t.Fatalf("LoadSurface: %v", err)
	}
	defer loaded.Close()
	if loaded.Size() != s.Size() {
		t.Fatalf("loaded size = %v", loaded.Size())
	}

	if err := SurfaceHandle(nil).SaveJPG(path, 90); err == nil {
		t.Fatalf("saving a null surface should fail")
	}
}

func TestSurfaceOwnership(t *testing.T) {
	s := newTestSurface(t)

	handle := s.Handle()
	handle.Close()
	if !s.Valid() {
		t.Fatalf("closing a handle must not free the surface")
	}

	if _, err := LoadBMP(filepath.Join(t.TempDir(), "missing.bmp")); err == nil {
		t.Fatalf("loading a missing file should fail")
	}
	if SurfaceHandle(nil).Valid() {
		t.Fatalf("a nil handle is invalid")
	}
}

func TestFormatInfoAndPalette(t *testing.T) {
	requireVideo(t)

	info, err := NewFormatInfo(PixelFormatRGBA8888)
	if err != nil {
		t.Fatalf("NewFormatInfo: %v", err)
	}
	defer info.Close()
	if info.BytesPerPixel() != 4 {
		t.Fatalf("BytesPerPixel = %d", info.BytesPerPixel())
	}
	c := RGBA(10, 20, 30, 40)
	if got := info.PixelToRGBA(info.MapRGBA(c)); got != c {
		t.Fatalf("RGBA mapping round trip = %v", got)
	}

	p, err := NewPalette(4)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	defer p.Close()
	if p.Len() != 4 {
		t.Fatalf("Len = %d", p.Len())
	}
	if err := p.Set(2, Purple); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, ok := p.At(2); !ok || got != Purple {
		t.Fatalf("At(2) = %v, %v", got, ok)
	}
	if _, ok := p.At(4); ok {
		t.Fatalf("At past the end should fail")
	}
}
