package centurion

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestLastError_CapturesMessage(t *testing.T) {
	SetError("cannot open %s", "thing")
	err := IMGError()
	if err.Library != IMG {
		t.Fatalf("expected IMG, got %v", err.Library)
	}
	if err.Message != "cannot open thing" {
		t.Fatalf("unexpected message %q", err.Message)
	}

	// Later native errors must not alter what was captured.
	SetError("something else")
	if err.Message != "cannot open thing" {
		t.Fatal("captured message changed after a later error")
	}
}

func TestError_IsByLibrary(t *testing.T) {
	err := pkgerrors.Wrap(&Error{Library: TTF, Message: "no font"}, "loading")
	if !errors.Is(err, ErrTTF) {
		t.Fatal("expected the wrapped error to match ErrTTF")
	}
	if errors.Is(err, ErrSDL) {
		t.Fatal("a TTF error must not match ErrSDL")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(SDL, nil) != nil {
		t.Fatal("expected nil for a nil error")
	}
	orig := &Error{Library: MIX, Message: "x"}
	if Wrap(SDL, orig) != orig {
		t.Fatal("expected an *Error to pass through untouched")
	}
}

func TestCheckCode(t *testing.T) {
	if err := CheckCode(SDL, 0); err != nil {
		t.Fatalf("expected nil for code 0, got %v", err)
	}
	SetError("negative")
	if err := CheckCode(SDL, -1); err == nil || err.Error() != "SDL: negative" {
		t.Fatalf("expected the last error for a negative code, got %v", err)
	}
}

func TestEnumName_PanicsOnUnknown(t *testing.T) {
	if SDL.String() != "SDL" {
		t.Fatalf("unexpected name %q", SDL.String())
	}

	defer func() {
		r := recover()
		if _, ok := r.(*EnumError); !ok {
			t.Fatalf("expected an *EnumError panic, got %v", r)
		}
	}()
	_ = Lib(42).String()
}

func TestResult(t *testing.T) {
	tests := []struct {
		name string
		r    Result
		ok   bool
	}{
		{"code zero", ResultFromCode(0), true},
		{"code positive", ResultFromCode(3), true},
		{"code negative", ResultFromCode(-1), false},
		{"nil error", ResultFromError(nil), true},
		{"error", ResultFromError(errors.New("x")), false},
		{"bool", ResultOf(true), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.r.Ok() != tt.ok || tt.r.Failed() == tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, tt.r)
			}
		})
	}
	if Success.String() != "success" || Failure.String() != "failure" {
		t.Fatal("unexpected result strings")
	}
}

func TestSDLString_Null(t *testing.T) {
	s := NewSDLString(nil)
	if s.Valid() {
		t.Fatal("expected a null SDL string to be falsy")
	}
	if s.Copy() != "" {
		t.Fatalf("expected an empty copy, got %q", s.Copy())
	}
	s.Close()
}

func TestVersion(t *testing.T) {
	v := Version{Major: 2, Minor: 0, Patch: 18}
	if v.String() != "2.0.18" {
		t.Fatalf("unexpected version string %q", v.String())
	}
	if !v.AtLeast(2, 0, 10) || v.AtLeast(2, 1, 0) {
		t.Fatal("unexpected AtLeast result")
	}
	if LinkedSDLVersion().Major != 2 {
		t.Fatalf("expected SDL 2, got %v", LinkedSDLVersion())
	}
}

func TestSatelliteVersions(t *testing.T) {
	for _, c := range []struct {
		name             string
		compiled, linked Version
	}{
		{"SDL_image", CompiledIMGVersion(), LinkedIMGVersion()},
		{"SDL_mixer", CompiledMIXVersion(), LinkedMIXVersion()},
		{"SDL_ttf", CompiledTTFVersion(), LinkedTTFVersion()},
	} {
		if c.compiled.Major != 2 || c.linked.Major != 2 {
			t.Errorf("%s: compiled %v, linked %v", c.name, c.compiled, c.linked)
		}
	}
}
