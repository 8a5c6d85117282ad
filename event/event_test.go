package event

import (
	"os"
	"testing"

	"github.com/ignite-laboratories/centurion/input"
	"github.com/veandco/go-sdl2/sdl"
)

var eventsReady bool

func TestMain(m *testing.M) {
	eventsReady = sdl.Init(sdl.INIT_EVENTS) == nil
	code := m.Run()
	if eventsReady {
		sdl.Quit()
	}
	os.Exit(code)
}

func requireEvents(t *testing.T) {
	t.Helper()
	if !eventsReady {
		t.Skip("SDL events subsystem unavailable")
	}
}

func TestWindowEventRoundTrip(t *testing.T) {
	e := NewWindowEvent()
	e.SetTimestamp(7)
	e.SetWindowID(3)
	e.SetEventID(WindowResized)
	e.SetData1(640)
	e.SetData2(480)

	native, ok := e.Native().(*sdl.WindowEvent)
	if !ok {
		t.Fatalf("Native returned %T", e.Native())
	}
	if Type(native.Type) != Window || native.Timestamp != 7 || native.WindowID != 3 ||
		WindowEventID(native.Event) != WindowResized || native.Data1 != 640 || native.Data2 != 480 {
		t.Fatalf("unexpected native event %+v", *native)
	}
}

func TestKeyboardEventRoundTrip(t *testing.T) {
	e := NewKeyboardEvent()
	e.SetType(KeyUp)
	e.SetWindowID(9)
	e.SetScanCode(input.ScanEscape)
	e.SetKeyCode(input.KeyEscape)
	e.SetModifiers(input.ModLCtrl | input.ModCaps)
	e.SetState(Released)
	e.SetRepeated(true)

	native := e.Native().(*sdl.KeyboardEvent)
	if Type(native.Type) != KeyUp || native.WindowID != 9 || native.State != uint8(Released) || native.Repeat != 1 {
		t.Fatalf("unexpected native header %+v", *native)
	}
	if input.ScanCode(native.Keysym.Scancode) != input.ScanEscape || input.KeyCode(native.Keysym.Sym) != input.KeyEscape ||
		input.KeyMod(native.Keysym.Mod) != input.ModLCtrl|input.ModCaps {
		t.Fatalf("unexpected keysym %+v", native.Keysym)
	}

	back := Wrap(native).(*KeyboardEvent)
	if !back.Is(input.ScanEscape) || !back.IsKey(input.KeyEscape) || !back.IsActive(input.ModCtrl) || back.Pressed() {
		t.Fatalf("wrapping the native event lost fields")
	}
}

func TestTextEventsTruncate(t *testing.T) {
	e := NewTextInputEvent()
	e.SetText("hello")
	if e.Text() != "hello" {
		t.Fatalf("Text = %q", e.Text())
	}
	long := "0123456789012345678901234567890123456789"
	e.SetText(long)
	if got := e.Text(); got != long[:31] {
		t.Fatalf("Text should keep 31 bytes and a terminator, got %q", got)
	}

	edit := NewTextEditingEvent()
	edit.SetText("compose")
	edit.SetStart(2)
	edit.SetLength(3)
	native := edit.Native().(*sdl.TextEditingEvent)
	if Type(native.Type) != TextEditing || native.Start != 2 || native.Length != 3 || FromTextEditingEvent(*native).Text() != "compose" {
		t.Fatalf("unexpected native event %+v", *native)
	}
}

func TestMouseEventsRoundTrip(t *testing.T) {
	motion := NewMouseMotionEvent()
	motion.SetWhich(1)
	motion.SetState(input.ButtonLeft.Mask())
	motion.SetX(10)
	motion.SetY(20)
	motion.SetDX(-1)
	motion.SetDY(2)
	m := motion.Native().(*sdl.MouseMotionEvent)
	if Type(m.Type) != MouseMotion || m.Which != 1 || m.X != 10 || m.Y != 20 || m.XRel != -1 || m.YRel != 2 {
		t.Fatalf("unexpected motion %+v", *m)
	}
	if !FromMouseMotionEvent(*m).Pressed(input.ButtonLeft) {
		t.Fatalf("button mask lost")
	}

	button := NewMouseButtonEvent()
	button.SetButton(input.ButtonRight)
	button.SetClicks(2)
	button.SetX(5)
	b := button.Native().(*sdl.MouseButtonEvent)
	if Type(b.Type) != MouseButtonDown || input.MouseButton(b.Button) != input.ButtonRight || b.Clicks != 2 || b.X != 5 ||
		b.State != uint8(Pressed) {
		t.Fatalf("unexpected button %+v", *b)
	}

	wheel := NewMouseWheelEvent()
	wheel.SetY(-3)
	wheel.SetDirection(WheelFlipped)
	w := wheel.Native().(*sdl.MouseWheelEvent)
	if Type(w.Type) != MouseWheel || w.Y != -3 || WheelDirection(w.Direction) != WheelFlipped {
		t.Fatalf("unexpected wheel %+v", *w)
	}
}

func TestJoystickEventsRoundTrip(t *testing.T) {
	axis := NewJoyAxisEvent()
	axis.SetWhich(4)
	axis.SetAxis(1)
	axis.SetValue(input.AxisMin)
	a := axis.Native().(*sdl.JoyAxisEvent)
	if Type(a.Type) != JoyAxisMotion || int32(a.Which) != 4 || a.Axis != 1 || a.Value != input.AxisMin {
		t.Fatalf("unexpected axis %+v", *a)
	}

	hat := NewJoyHatEvent()
	hat.SetPosition(input.HatLeftUp)
	if h := hat.Native().(*sdl.JoyHatEvent); input.HatState(h.Value) != input.HatLeftUp {
		t.Fatalf("unexpected hat %+v", *h)
	}

	ball := NewJoyBallEvent()
	ball.SetDX(3)
	ball.SetDY(-3)
	if b := ball.Native().(*sdl.JoyBallEvent); b.XRel != 3 || b.YRel != -3 {
		t.Fatalf("unexpected ball %+v", *b)
	}

	device := NewJoyDeviceEvent()
	device.SetWhich(2)
	if _, ok := device.Native().(*sdl.JoyDeviceAddedEvent); !ok {
		t.Fatalf("an added event rebuilds the added union member")
	}
	device.SetType(JoyDeviceRemoved)
	removed, ok := device.Native().(*sdl.JoyDeviceRemovedEvent)
	if !ok || int32(removed.Which) != 2 || Type(removed.Type) != JoyDeviceRemoved {
		t.Fatalf("a removed event rebuilds the removed union member")
	}
	if back := Wrap(removed).(*JoyDeviceEvent); back.Which() != 2 || back.Type() != JoyDeviceRemoved {
		t.Fatalf("wrapping the removed event lost fields")
	}
}

func TestControllerEventsRoundTrip(t *testing.T) {
	button := NewControllerButtonEvent()
	button.SetWhich(8)
	button.SetButton(input.ButtonStart)
	button.SetType(ControllerButtonUp)
	button.SetState(Released)
	b := button.Native().(*sdl.ControllerButtonEvent)
	if Type(b.Type) != ControllerButtonUp || int32(b.Which) != 8 || input.ControllerButton(b.Button) != input.ButtonStart ||
		b.State != uint8(Released) {
		t.Fatalf("unexpected button %+v", *b)
	}

	axis := NewControllerAxisEvent()
	axis.SetAxis(input.AxisTriggerLeft)
	axis.SetValue(input.AxisMax)
	if a := axis.Native().(*sdl.ControllerAxisEvent); input.ControllerAxis(a.Axis) != input.AxisTriggerLeft || a.Value != input.AxisMax {
		t.Fatalf("unexpected axis %+v", *a)
	}

	device := NewControllerDeviceEvent()
	device.SetType(ControllerDeviceRemapped)
	if d := device.Native().(*sdl.ControllerDeviceEvent); Type(d.Type) != ControllerDeviceRemapped {
		t.Fatalf("unexpected device %+v", *d)
	}
}

func TestMiscEventsRoundTrip(t *testing.T) {
	audio := NewAudioDeviceEvent()
	audio.SetWhich(1)
	audio.SetCapture(true)
	if a := audio.Native().(*sdl.AudioDeviceEvent); a.Which != 1 || a.IsCapture != 1 || Type(a.Type) != AudioDeviceAdded {
		t.Fatalf("unexpected audio device %+v", *a)
	}

	drop := NewDropEvent()
	drop.SetFile("/tmp/file.txt")
	drop.SetWindowID(2)
	if d := drop.Native().(*sdl.DropEvent); d.File != "/tmp/file.txt" || d.WindowID != 2 || Type(d.Type) != DropFile {
		t.Fatalf("unexpected drop %+v", *d)
	}

	user := NewUserEvent()
	user.SetType(User + 1)
	user.SetCode(42)
	if u := user.Native().(*sdl.UserEvent); u.Code != 42 || Type(u.Type) != User+1 {
		t.Fatalf("unexpected user %+v", *u)
	}

	finger := NewTouchFingerEvent()
	finger.SetTouchID(11)
	finger.SetFingerID(12)
	finger.SetX(0.5)
	finger.SetPressure(0.25)
	f := finger.Native().(*sdl.TouchFingerEvent)
	if int64(f.TouchID) != 11 || int64(f.FingerID) != 12 || f.X != 0.5 || f.Pressure != 0.25 || Type(f.Type) != FingerDown {
		t.Fatalf("unexpected finger %+v", *f)
	}

	if Wrap(nil) != nil {
		t.Fatalf("wrapping nil yields nil")
	}
	if _, ok := Wrap(NewQuitEvent().Native()).(*QuitEvent); !ok {
		t.Fatalf("quit events wrap as QuitEvent")
	}
}

func TestTypeNames(t *testing.T) {
	if MouseButtonDown.String() != "MouseButtonDown" || WindowFocusLost.String() != "FocusLost" || Pressed.String() != "Pressed" {
		t.Fatalf("unexpected names")
	}
	if !(User + 5).Registered() || Quit.Registered() {
		t.Fatalf("Registered covers the user range only")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("undeclared types must panic")
		}
	}()
	_ = Type(0x9999).String()
}

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()
	var keys, quits, others int
	Bind(d, func(e *KeyboardEvent) { keys++ })
	Bind(d, func(e *QuitEvent) { quits++ })

	if d.Bound() != 2 {
		t.Fatalf("Bound = %d", d.Bound())
	}
	d.Dispatch(NewKeyboardEvent())
	d.Dispatch(NewQuitEvent())
	if d.Dispatch(NewMouseWheelEvent()) {
		t.Fatalf("unbound events are dropped without a fallback")
	}
	d.Fallback(func(Event) { others++ })
	d.Dispatch(NewMouseWheelEvent())

	Unbind[*QuitEvent](d)
	d.Dispatch(NewQuitEvent())

	if keys != 1 || quits != 1 || others != 2 {
		t.Fatalf("keys=%d quits=%d others=%d", keys, quits, others)
	}
}

func TestQueue(t *testing.T) {
	requireEvents(t)
	Flush()

	first, err := RegisterUserEvents(1)
	if err != nil || !first.Registered() {
		t.Fatalf("RegisterUserEvents = %v, %v", first, err)
	}
	user := NewUserEvent()
	user.SetType(first)
	user.SetCode(5)

	for _, e := range []Event{user, NewQuitEvent()} {
		if ok, err := Push(e); !ok || err != nil {
			t.Fatalf("Push(%v) = %v, %v", e.Type(), ok, err)
		}
	}
	if Count() != 2 || CountOf(Quit) != 1 || !InQueue(first) {
		t.Fatalf("queue holds %d events", Count())
	}

	h := NewHandler()
	if !h.Poll() {
		t.Fatalf("Poll should find the user event")
	}
	got, ok := As[*UserEvent](h)
	if !ok || got.Code() != 5 || got.Type() != first {
		t.Fatalf("unexpected first event %v", h.Event())
	}
	if Is[*QuitEvent](h) {
		t.Fatalf("the current event is not a quit event")
	}

	d := NewDispatcher()
	quit := false
	Bind(d, func(*QuitEvent) { quit = true })
	if n := d.Poll(); n != 1 || !quit {
		t.Fatalf("dispatcher handled %d events", n)
	}

	Flush()
	if h.Poll() || !h.Empty() || Count() != 0 {
		t.Fatalf("the queue should be empty")
	}
}
