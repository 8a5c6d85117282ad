package input

import (
	"errors"
	"os"
	"testing"

	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

var sdlReady bool

func TestMain(m *testing.M) {
	os.Setenv("SDL_VIDEODRIVER", "dummy")
	sdlReady = sdl.Init(sdl.INIT_VIDEO|sdl.INIT_JOYSTICK|sdl.INIT_GAMECONTROLLER) == nil
	code := m.Run()
	if sdlReady {
		sdl.Quit()
	}
	os.Exit(code)
}

func requireSDL(t *testing.T) {
	t.Helper()
	if !sdlReady {
		t.Skip("SDL unavailable")
	}
}

func TestKeyboardFrames(t *testing.T) {
	k := NewKeyboard()
	state := make([]uint8, ScanCodeCount)

	state[ScanA] = 1
	k.update(state, ModLShift)
	if !k.IsPressed(ScanA) || !k.JustPressed(ScanA) || k.IsHeld(ScanA) {
		t.Fatalf("first frame: A should be just pressed")
	}
	if !k.IsModifierActive(ModShift) || k.IsModifierActive(ModCtrl) {
		t.Fatalf("modifiers = %v", k.Modifiers())
	}

	k.update(state, ModNone)
	if !k.IsHeld(ScanA) || k.JustPressed(ScanA) {
		t.Fatalf("second frame: A should be held")
	}

	state[ScanA] = 0
	k.update(state, ModNone)
	if k.IsPressed(ScanA) || !k.JustReleased(ScanA) {
		t.Fatalf("third frame: A should be just released")
	}
	if k.IsPressed(ScanCode(10_000)) {
		t.Fatalf("codes past the state array are never pressed")
	}
}

func TestMouseFrames(t *testing.T) {
	m := NewMouse()
	m.update(10, 20, ButtonLeft.Mask()|ButtonX2.Mask())
	if x, y := m.Position(); x != 10 || y != 20 {
		t.Fatalf("Position = %d, %d", x, y)
	}
	if !m.JustPressed(ButtonLeft) || !m.IsPressed(ButtonX2) || m.IsPressed(ButtonRight) {
		t.Fatalf("unexpected button state")
	}
	m.update(10, 20, ButtonX2.Mask())
	if !m.JustReleased(ButtonLeft) || m.JustPressed(ButtonX2) {
		t.Fatalf("unexpected button edges")
	}
}

func TestEnumNames(t *testing.T) {
	cases := []struct{ got, want string }{
		{(ModLCtrl | ModRAlt).String(), "LCtrl|RAlt"},
		{ModNone.String(), "None"},
		{ButtonMiddle.String(), "Middle"},
		{HatLeftDown.String(), "LeftDown"},
		{PowerWired.String(), "Wired"},
		{PowerUnknown.String(), "Unknown"},
		{AxisTriggerRight.String(), "TriggerRight"},
		{ButtonDPadLeft.String(), "DPadLeft"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}

	for name, fn := range map[string]func(){
		"hat":    func() { _ = HatState(0x10).String() },
		"button": func() { _ = ControllerButton(99).String() },
		"mouse":  func() { _ = MouseButton(9).String() },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: undeclared value did not panic", name)
				}
			}()
			fn()
		}()
	}
}

func TestKeyCodeDerivation(t *testing.T) {
	if KeyCodeOf(ScanF1) != KeyF1 || KeyUp != KeyCode(82|1<<30) {
		t.Fatalf("keys without characters carry the scan code mask")
	}
}

func TestKeyNames(t *testing.T) {
	requireSDL(t)

	if ScanCodeFromName("Space") != ScanSpace {
		t.Fatalf("ScanCodeFromName(Space) = %d", ScanCodeFromName("Space"))
	}
	if KeyEscape.Name() != "Escape" {
		t.Fatalf("KeyEscape.Name() = %q", KeyEscape.Name())
	}
	if KeyCodeFromName("Return") != KeyReturn {
		t.Fatalf("KeyCodeFromName(Return) = %d", KeyCodeFromName("Return"))
	}
	if ScanUp.Key() != KeyUp || KeyUp.Scan() != ScanUp {
		t.Fatalf("arrow keys map one to one")
	}
}

func TestOpenMissingDevices(t *testing.T) {
	requireSDL(t)

	index := JoystickCount()
	if _, err := OpenJoystick(index); !errors.Is(err, centurion.ErrSDL) {
		t.Fatalf("opening a joystick past the end should fail with an SDL error, got %v", err)
	}
	if _, err := OpenController(index); err == nil {
		t.Fatalf("opening a controller past the end should fail")
	}
	if JoystickFromInstanceID(-1).Valid() {
		t.Fatalf("an unknown instance id yields an invalid handle")
	}
}
