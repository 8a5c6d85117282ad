package event

import (
	"github.com/ignite-laboratories/centurion/input"
	"github.com/veandco/go-sdl2/sdl"
)

// JoyAxisEvent reports joystick axis motion.
type JoyAxisEvent struct {
	native sdl.JoyAxisEvent
}

func NewJoyAxisEvent() *JoyAxisEvent {
	return &JoyAxisEvent{native: sdl.JoyAxisEvent{Type: uint32(JoyAxisMotion)}}
}

func FromJoyAxisEvent(native sdl.JoyAxisEvent) *JoyAxisEvent { return &JoyAxisEvent{native: native} }

func (e *JoyAxisEvent) Type() Type               { return Type(e.native.Type) }
func (e *JoyAxisEvent) SetType(t Type)           { e.native.Type = uint32(t) }
func (e *JoyAxisEvent) Timestamp() uint32        { return e.native.Timestamp }
func (e *JoyAxisEvent) SetTimestamp(time uint32) { e.native.Timestamp = time }
func (e *JoyAxisEvent) Get() sdl.JoyAxisEvent    { return e.native }
func (e *JoyAxisEvent) Native() sdl.Event        { n := e.native; return &n }

// Which is the joystick instance id.
func (e *JoyAxisEvent) Which() int32         { return int32(e.native.Which) }
func (e *JoyAxisEvent) SetWhich(which int32) { set(&e.native.Which, which) }
func (e *JoyAxisEvent) Axis() uint8          { return e.native.Axis }
func (e *JoyAxisEvent) SetAxis(axis uint8)   { e.native.Axis = axis }
func (e *JoyAxisEvent) Value() int16         { return e.native.Value }
func (e *JoyAxisEvent) SetValue(value int16) { e.native.Value = value }

// JoyBallEvent reports trackball motion.
type JoyBallEvent struct {
	native sdl.JoyBallEvent
}

func NewJoyBallEvent() *JoyBallEvent {
	return &JoyBallEvent{native: sdl.JoyBallEvent{Type: uint32(JoyBallMotion)}}
}

func FromJoyBallEvent(native sdl.JoyBallEvent) *JoyBallEvent { return &JoyBallEvent{native: native} }

func (e *JoyBallEvent) Type() Type               { return Type(e.native.Type) }
func (e *JoyBallEvent) SetType(t Type)           { e.native.Type = uint32(t) }
func (e *JoyBallEvent) Timestamp() uint32        { return e.native.Timestamp }
func (e *JoyBallEvent) SetTimestamp(time uint32) { e.native.Timestamp = time }
func (e *JoyBallEvent) Get() sdl.JoyBallEvent    { return e.native }
func (e *JoyBallEvent) Native() sdl.Event        { n := e.native; return &n }

func (e *JoyBallEvent) Which() int32         { return int32(e.native.Which) }
func (e *JoyBallEvent) SetWhich(which int32) { set(&e.native.Which, which) }
func (e *JoyBallEvent) Ball() uint8          { return e.native.Ball }
func (e *JoyBallEvent) SetBall(ball uint8)   { e.native.Ball = ball }
func (e *JoyBallEvent) DX() int16            { return e.native.XRel }
func (e *JoyBallEvent) DY() int16            { return e.native.YRel }
func (e *JoyBallEvent) SetDX(dx int16)       { e.native.XRel = dx }
func (e *JoyBallEvent) SetDY(dy int16)       { e.native.YRel = dy }

// JoyHatEvent reports a hat switch position change.
type JoyHatEvent struct {
	native sdl.JoyHatEvent
}

func NewJoyHatEvent() *JoyHatEvent {
	return &JoyHatEvent{native: sdl.JoyHatEvent{Type: uint32(JoyHatMotion)}}
}

func FromJoyHatEvent(native sdl.JoyHatEvent) *JoyHatEvent { return &JoyHatEvent{native: native} }

func (e *JoyHatEvent) Type() Type               { return Type(e.native.Type) }
func (e *JoyHatEvent) SetType(t Type)           { e.native.Type = uint32(t) }
func (e *JoyHatEvent) Timestamp() uint32        { return e.native.Timestamp }
func (e *JoyHatEvent) SetTimestamp(time uint32) { e.native.Timestamp = time }
func (e *JoyHatEvent) Get() sdl.JoyHatEvent     { return e.native }
func (e *JoyHatEvent) Native() sdl.Event        { n := e.native; return &n }

func (e *JoyHatEvent) Which() int32                   { return int32(e.native.Which) }
func (e *JoyHatEvent) SetWhich(which int32)           { set(&e.native.Which, which) }
func (e *JoyHatEvent) Hat() uint8                     { return e.native.Hat }
func (e *JoyHatEvent) SetHat(hat uint8)               { e.native.Hat = hat }
func (e *JoyHatEvent) Position() input.HatState       { return input.HatState(e.native.Value) }
func (e *JoyHatEvent) SetPosition(pos input.HatState) { set(&e.native.Value, pos) }

// JoyButtonEvent reports a joystick button press or release.
type JoyButtonEvent struct {
	native sdl.JoyButtonEvent
}

// NewJoyButtonEvent creates a JoyButtonDown event.
func NewJoyButtonEvent() *JoyButtonEvent {
	return &JoyButtonEvent{native: sdl.JoyButtonEvent{Type: uint32(JoyButtonDown), State: uint8(Pressed)}}
}

func FromJoyButtonEvent(native sdl.JoyButtonEvent) *JoyButtonEvent {
	return &JoyButtonEvent{native: native}
}

func (e *JoyButtonEvent) Type() Type               { return Type(e.native.Type) }
func (e *JoyButtonEvent) SetType(t Type)           { e.native.Type = uint32(t) }
func (e *JoyButtonEvent) Timestamp() uint32        { return e.native.Timestamp }
func (e *JoyButtonEvent) SetTimestamp(time uint32) { e.native.Timestamp = time }
func (e *JoyButtonEvent) Get() sdl.JoyButtonEvent  { return e.native }
func (e *JoyButtonEvent) Native() sdl.Event        { n := e.native; return &n }

func (e *JoyButtonEvent) Which() int32               { return int32(e.native.Which) }
func (e *JoyButtonEvent) SetWhich(which int32)       { set(&e.native.Which, which) }
func (e *JoyButtonEvent) Button() uint8              { return e.native.Button }
func (e *JoyButtonEvent) SetButton(button uint8)     { e.native.Button = button }
func (e *JoyButtonEvent) State() ButtonState         { return ButtonState(e.native.State) }
func (e *JoyButtonEvent) SetState(state ButtonState) { set(&e.native.State, state) }
func (e *JoyButtonEvent) Pressed() bool              { return e.State() == Pressed }

// JoyDeviceEvent reports a joystick being attached or detached.  SDL uses two union members for the
// two types; the wrapper covers both and rebuilds whichever matches its type.
type JoyDeviceEvent struct {
	native sdl.JoyDeviceAddedEvent
}

// NewJoyDeviceEvent creates a JoyDeviceAdded event.
func NewJoyDeviceEvent() *JoyDeviceEvent {
	return &JoyDeviceEvent{native: sdl.JoyDeviceAddedEvent{Type: uint32(JoyDeviceAdded)}}
}

func FromJoyDeviceAddedEvent(native sdl.JoyDeviceAddedEvent) *JoyDeviceEvent {
	return &JoyDeviceEvent{native: native}
}

func FromJoyDeviceRemovedEvent(native sdl.JoyDeviceRemovedEvent) *JoyDeviceEvent {
	e := &JoyDeviceEvent{native: sdl.JoyDeviceAddedEvent{Type: native.Type, Timestamp: native.Timestamp}}
	set(&e.native.Which, native.Which)
	return e
}

func (e *JoyDeviceEvent) Type() Type               { return Type(e.native.Type) }
func (e *JoyDeviceEvent) SetType(t Type)           { e.native.Type = uint32(t) }
func (e *JoyDeviceEvent) Timestamp() uint32        { return e.native.Timestamp }
func (e *JoyDeviceEvent) SetTimestamp(time uint32) { e.native.Timestamp = time }

// Which is the device index when added and the instance id when removed.
func (e *JoyDeviceEvent) Which() int32         { return int32(e.native.Which) }
func (e *JoyDeviceEvent) SetWhich(which int32) { set(&e.native.Which, which) }

func (e *JoyDeviceEvent) Native() sdl.Event {
	if e.Type() == JoyDeviceRemoved {
		removed := &sdl.JoyDeviceRemovedEvent{Type: e.native.Type, Timestamp: e.native.Timestamp}
		set(&removed.Which, e.native.Which)
		return removed
	}
	n := e.native
	return &n
}
