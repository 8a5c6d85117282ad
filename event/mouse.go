package event

import (
	"github.com/ignite-laboratories/centurion/input"
	"github.com/veandco/go-sdl2/sdl"
)

// MouseMotionEvent reports cursor movement.
type MouseMotionEvent struct {
	native sdl.MouseMotionEvent
}

func NewMouseMotionEvent() *MouseMotionEvent {
	return &MouseMotionEvent{native: sdl.MouseMotionEvent{Type: uint32(MouseMotion)}}
}

func FromMouseMotionEvent(native sdl.MouseMotionEvent) *MouseMotionEvent {
	return &MouseMotionEvent{native: native}
}

func (e *MouseMotionEvent) Type() Type                { return Type(e.native.Type) }
func (e *MouseMotionEvent) SetType(t Type)            { e.native.Type = uint32(t) }
func (e *MouseMotionEvent) Timestamp() uint32         { return e.native.Timestamp }
func (e *MouseMotionEvent) SetTimestamp(time uint32)  { e.native.Timestamp = time }
func (e *MouseMotionEvent) Get() sdl.MouseMotionEvent { return e.native }
func (e *MouseMotionEvent) Native() sdl.Event         { n := e.native; return &n }

func (e *MouseMotionEvent) WindowID() uint32      { return e.native.WindowID }
func (e *MouseMotionEvent) SetWindowID(id uint32) { e.native.WindowID = id }

// Which is the mouse instance, or the touch id for synthesized events.
func (e *MouseMotionEvent) Which() uint32         { return e.native.Which }
func (e *MouseMotionEvent) SetWhich(which uint32) { e.native.Which = which }

// State is the button mask held during the motion.
func (e *MouseMotionEvent) State() uint32                    { return e.native.State }
func (e *MouseMotionEvent) SetState(state uint32)            { e.native.State = state }
func (e *MouseMotionEvent) Pressed(b input.MouseButton) bool { return e.native.State&b.Mask() != 0 }
func (e *MouseMotionEvent) X() int32                         { return e.native.X }
func (e *MouseMotionEvent) Y() int32                         { return e.native.Y }
func (e *MouseMotionEvent) SetX(x int32)                     { e.native.X = x }
func (e *MouseMotionEvent) SetY(y int32)                     { e.native.Y = y }
func (e *MouseMotionEvent) DX() int32                        { return e.native.XRel }
func (e *MouseMotionEvent) DY() int32                        { return e.native.YRel }
func (e *MouseMotionEvent) SetDX(dx int32)                   { e.native.XRel = dx }
func (e *MouseMotionEvent) SetDY(dy int32)                   { e.native.YRel = dy }

// MouseButtonEvent reports a mouse button press or release.
type MouseButtonEvent struct {
	native sdl.MouseButtonEvent
}

// NewMouseButtonEvent creates a MouseButtonDown event.
func NewMouseButtonEvent() *MouseButtonEvent {
	return &MouseButtonEvent{native: sdl.MouseButtonEvent{Type: uint32(MouseButtonDown), State: uint8(Pressed)}}
}

func FromMouseButtonEvent(native sdl.MouseButtonEvent) *MouseButtonEvent {
	return &MouseButtonEvent{native: native}
}

func (e *MouseButtonEvent) Type() Type                { return Type(e.native.Type) }
func (e *MouseButtonEvent) SetType(t Type)            { e.native.Type = uint32(t) }
func (e *MouseButtonEvent) Timestamp() uint32         { return e.native.Timestamp }
func (e *MouseButtonEvent) SetTimestamp(time uint32)  { e.native.Timestamp = time }
func (e *MouseButtonEvent) Get() sdl.MouseButtonEvent { return e.native }
func (e *MouseButtonEvent) Native() sdl.Event         { n := e.native; return &n }

func (e *MouseButtonEvent) WindowID() uint32              { return e.native.WindowID }
func (e *MouseButtonEvent) SetWindowID(id uint32)         { e.native.WindowID = id }
func (e *MouseButtonEvent) Which() uint32                 { return e.native.Which }
func (e *MouseButtonEvent) SetWhich(which uint32)         { e.native.Which = which }
func (e *MouseButtonEvent) Button() input.MouseButton     { return input.MouseButton(e.native.Button) }
func (e *MouseButtonEvent) SetButton(b input.MouseButton) { set(&e.native.Button, b) }
func (e *MouseButtonEvent) State() ButtonState            { return ButtonState(e.native.State) }
func (e *MouseButtonEvent) SetState(state ButtonState)    { set(&e.native.State, state) }
func (e *MouseButtonEvent) Pressed() bool                 { return e.State() == Pressed }
func (e *MouseButtonEvent) Clicks() uint8                 { return e.native.Clicks }
func (e *MouseButtonEvent) SetClicks(clicks uint8)        { e.native.Clicks = clicks }
func (e *MouseButtonEvent) X() int32                      { return e.native.X }
func (e *MouseButtonEvent) Y() int32                      { return e.native.Y }
func (e *MouseButtonEvent) SetX(x int32)                  { e.native.X = x }
func (e *MouseButtonEvent) SetY(y int32)                  { e.native.Y = y }

// MouseWheelEvent reports wheel scrolling.
type MouseWheelEvent struct {
	native sdl.MouseWheelEvent
}

func NewMouseWheelEvent() *MouseWheelEvent {
	return &MouseWheelEvent{native: sdl.MouseWheelEvent{Type: uint32(MouseWheel)}}
}

func FromMouseWheelEvent(native sdl.MouseWheelEvent) *MouseWheelEvent {
	return &MouseWheelEvent{native: native}
}

func (e *MouseWheelEvent) Type() Type               { return Type(e.native.Type) }
func (e *MouseWheelEvent) SetType(t Type)           { e.native.Type = uint32(t) }
func (e *MouseWheelEvent) Timestamp() uint32        { return e.native.Timestamp }
func (e *MouseWheelEvent) SetTimestamp(time uint32) { e.native.Timestamp = time }
func (e *MouseWheelEvent) Get() sdl.MouseWheelEvent { return e.native }
func (e *MouseWheelEvent) Native() sdl.Event        { n := e.native; return &n }

func (e *MouseWheelEvent) WindowID() uint32      { return e.native.WindowID }
func (e *MouseWheelEvent) SetWindowID(id uint32) { e.native.WindowID = id }
func (e *MouseWheelEvent) Which() uint32         { return e.native.Which }
func (e *MouseWheelEvent) SetWhich(which uint32) { e.native.Which = which }

// X is the horizontal scroll amount; positive scrolls right.
func (e *MouseWheelEvent) X() int32 { return e.native.X }

// Y is the vertical scroll amount; positive scrolls away from the user.
func (e *MouseWheelEvent) Y() int32 { return e.native.Y }

func (e *MouseWheelEvent) SetX(x int32)                          { e.native.X = x }
func (e *MouseWheelEvent) SetY(y int32)                          { e.native.Y = y }
func (e *MouseWheelEvent) Direction() WheelDirection             { return WheelDirection(e.native.Direction) }
func (e *MouseWheelEvent) SetDirection(direction WheelDirection) { set(&e.native.Direction, direction) }
