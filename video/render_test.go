package video

import "testing"

func newTestRenderer(t *testing.T) (*Window, *Renderer) {
	t.Helper()
	requireVideo(t)

	w, err := NewWindow("centurion", &Area{Width: 64, Height: 48}, WindowHidden)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	t.Cleanup(w.Close)

	r, err := w.NewRenderer(RendererSoftware | RendererTargetTexture)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	t.Cleanup(r.Close)
	return w, r
}

func TestWindowProperties(t *testing.T) {
	w, _ := newTestRenderer(t)

	if w.Title() != "centurion" {
		t.Fatalf("Title = %q", w.Title())
	}
	w.SetTitle("renamed")
	if w.Title() != "renamed" {
		t.Fatalf("SetTitle did not apply")
	}
	if w.Size() != (Area{Width: 64, Height: 48}) {
		t.Fatalf("Size = %v", w.Size())
	}
	if w.Visible() {
		t.Fatalf("a hidden window is not visible")
	}

	found := WindowFromID(w.ID())
	if !found.Valid() || found.Get() != w.Get() {
		t.Fatalf("WindowFromID should find the window")
	}
	found.Close()
	if !w.Valid() {
		t.Fatalf("closing a looked-up handle must not destroy the window")
	}
}

func TestRendererDrawState(t *testing.T) {
	_, r := newTestRenderer(t)

	info, err := r.Info()
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Flags&RendererSoftware == 0 {
		t.Fatalf("expected a software renderer, got %v", info.Name)
	}

	if err := r.SetDrawColor(Orange); err != nil {
		t.Fatalf("SetDrawColor: %v", err)
	}
	if c, err := r.DrawColor(); err != nil || c != Orange {
		t.Fatalf("DrawColor = %v, %v", c, err)
	}
	if err := r.SetBlendMode(BlendBlend); err != nil {
		t.Fatalf("SetBlendMode: %v", err)
	}
	if m, err := r.BlendMode(); err != nil || m != BlendBlend {
		t.Fatalf("BlendMode = %v, %v", m, err)
	}

	for name, err := range map[string]error{
		"clear":      r.ClearWith(Black),
		"point":      r.DrawPoint(Point{X: 1, Y: 1}),
		"line":       r.DrawLine(Point{}, Point{X: 10, Y: 10}),
		"rect":       r.DrawRect(Rect{X: 2, Y: 2, Width: 5, Height: 5}),
		"fill rect":  r.FillRectF(FRect{X: 2, Y: 2, Width: 5.5, Height: 5.5}),
		"line float": r.DrawLineF(FPoint{}, FPoint{X: 3.5, Y: 3.5}),
	} {
		if err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	r.Present()

	size, err := r.OutputSize()
	if err != nil || size != (Area{Width: 64, Height: 48}) {
		t.Fatalf("OutputSize = %v, %v", size, err)
	}
}

func TestTextureStreaming(t *testing.T) {
	_, r := newTestRenderer(t)

	tex, err := r.NewTexture(PixelFormatRGBA8888, AccessStreaming, Area{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}
	defer tex.Close()

	format, access, size, err := tex.Query()
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if format != PixelFormatRGBA8888 || access != AccessStreaming || size != (Area{Width: 2, Height: 2}) {
		t.Fatalf("Query = %v %v %v", format, access, size)
	}
	if !tex.IsStreaming() || tex.IsTarget() {
		t.Fatalf("texture access predicates disagree with Query")
	}

	if err := tex.Update(nil, make([]byte, 16), 8); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := tex.Update(nil, make([]byte, 4), 8); err == nil {
		t.Fatalf("Update with too few bytes should fail")
	}
	if err := r.Copy(tex, nil, &Rect{Width: 8, Height: 8}); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if err := r.CopyEx(tex, nil, nil, 45, nil, FlipHorizontal); err != nil {
		t.Fatalf("CopyEx: %v", err)
	}
}

func TestTextureFromSurfaceAndTarget(t *testing.T) {
	_, r := newTestRenderer(t)

	s, err := NewSurface(Area{Width: 8, Height: 8}, PixelFormatRGBA8888)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	defer s.Close()

	tex, err := r.NewTextureFromSurface(s)
	if err != nil {
		t.Fatalf("NewTextureFromSurface: %v", err)
	}
	defer tex.Close()
	if tex.Size() != s.Size() {
		t.Fatalf("texture size %v differs from surface size %v", tex.Size(), s.Size())
	}
	if err := tex.SetAlphaMod(7); err != nil {
		t.Fatalf("SetAlphaMod: %v", err)
	}
	if a, _ := tex.AlphaMod(); a != 7 {
		t.Fatalf("AlphaMod = %d", a)
	}
	if err := tex.SetColorMod(RGB(10, 20, 30)); err != nil {
		t.Fatalf("SetColorMod: %v", err)
	}
	if c, err := tex.ColorMod(); err != nil || c != RGB(10, 20, 30) {
		t.Fatalf("ColorMod = %v, %v", c, err)
	}
	if err := tex.SetBlendMode(BlendAdd); err != nil {
		t.Fatalf("SetBlendMode: %v", err)
	}
	if m, err := tex.BlendMode(); err != nil || m != BlendAdd {
		t.Fatalf("BlendMode = %v, %v", m, err)
	}

	if !r.TargetsSupported() {
		t.Skip("render targets unsupported")
	}
	target, err := r.NewTexture(PixelFormatRGBA8888, AccessTarget, Area{Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}
	defer target.Close()
	if err := r.SetTarget(target); err != nil {
		t.Fatalf("SetTarget: %v", err)
	}
	if r.Target().Get() != target.Get() {
		t.Fatalf("Target should report the bound texture")
	}
	if err := r.SetTarget(nil); err != nil {
		t.Fatalf("SetTarget(nil): %v", err)
	}
}

func TestSharedTexture(t *testing.T) {
	_, r := newTestRenderer(t)

	tex, err := r.NewTexture(PixelFormatRGBA8888, AccessStatic, Area{Width: 1, Height: 1})
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}
	shared := tex.Share()
	if tex.Valid() {
		t.Fatalf("Share must leave the source texture null")
	}

	clone := shared.Clone()
	if shared.Refs() != 2 {
		t.Fatalf("Refs = %d", shared.Refs())
	}
	shared.Close()
	shared.Close()
	if clone.Refs() != 1 || !clone.Texture().Valid() {
		t.Fatalf("the clone must keep the texture alive")
	}
	clone.Close()
	if clone.Texture().Valid() {
		t.Fatalf("closing the last reference destroys the texture")
	}
}

func TestTextureUpdateStaticSubRect(t *testing.T) {
	_, r := newTestRenderer(t)

	s, err := NewSurface(Area{Width: 4, Height: 2}, PixelFormatRGBA8888)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	defer s.Close()
	if err := s.Fill(nil, Black); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	tex, err := r.NewTextureFromSurface(s)
	if err != nil {
		t.Fatalf("NewTextureFromSurface: %v", err)
	}
	defer tex.Close()
	if tex.IsStreaming() {
		t.Fatalf("a texture created from a surface is static")
	}
	if err := tex.SetBlendMode(BlendNone); err != nil {
		t.Fatalf("SetBlendMode: %v", err)
	}

	// One white pixel followed by a row's worth of padding.
	src := make([]byte, 16)
	copy(src, []byte{0xff, 0xff, 0xff, 0xff})
	if err := tex.Update(&Rect{Width: 1, Height: 1}, src, 16); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := tex.Update(&Rect{Width: 2, Height: 2}, src, 16); err == nil {
		t.Fatalf("two rows of pitch 16 need more than 16 bytes")
	}
	if err := tex.Update(&Rect{Width: 2, Height: 1}, src, 4); err == nil {
		t.Fatalf("a pitch shorter than the row should be rejected")
	}

	if err := r.ClearWith(Black); err != nil {
		t.Fatalf("ClearWith: %v", err)
	}
	if err := r.Copy(tex, nil, &Rect{Width: 4, Height: 2}); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	pixels, pitch, err := r.ReadPixels(&Rect{Width: 4, Height: 2}, PixelFormatRGBA8888)
	if err != nil {
		t.Fatalf("ReadPixels: %v", err)
	}
	if pitch != 16 || len(pixels) != 32 {
		t.Fatalf("ReadPixels returned %d bytes with pitch %d", len(pixels), pitch)
	}
	for i := 0; i < 8; i++ {
		px := pixels[i*4 : i*4+4]
		white := px[0] == 0xff && px[1] == 0xff && px[2] == 0xff && px[3] == 0xff
		if white != (i == 0) {
			t.Fatalf("pixel %d = % x", i, px)
		}
	}
}

func TestSharedTextureCloneAfterLastClose(t *testing.T) {
	_, r := newTestRenderer(t)

	tex, err := r.NewTexture(PixelFormatRGBA8888, AccessStatic, Area{Width: 1, Height: 1})
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}
	shared := tex.Share()
	shared.Close()

	late := shared.Clone()
	if late.Texture().Valid() {
		t.Fatalf("a clone of a destroyed texture must be invalid")
	}
	if shared.Refs() != 0 || late.Refs() != 0 {
		t.Fatalf("Refs = %d, %d after the last close", shared.Refs(), late.Refs())
	}
	late.Close()
	if shared.Refs() != 0 {
		t.Fatalf("closing an invalid clone changed the count to %d", shared.Refs())
	}
}
