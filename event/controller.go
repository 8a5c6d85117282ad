package event

import (
	"github.com/ignite-laboratories/centurion/input"
	"github.com/veandco/go-sdl2/sdl"
)

// ControllerAxisEvent reports game controller axis motion.
type ControllerAxisEvent struct {
	native sdl.ControllerAxisEvent
}

func NewControllerAxisEvent() *ControllerAxisEvent {
	return &ControllerAxisEvent{native: sdl.ControllerAxisEvent{Type: uint32(ControllerAxisMotion)}}
}

func FromControllerAxisEvent(native sdl.ControllerAxisEvent) *ControllerAxisEvent {
	return &ControllerAxisEvent{native: native}
}

func (e *ControllerAxisEvent) Type() Type                   { return Type(e.native.Type) }
func (e *ControllerAxisEvent) SetType(t Type)               { e.native.Type = uint32(t) }
func (e *ControllerAxisEvent) Timestamp() uint32            { return e.native.Timestamp }
func (e *ControllerAxisEvent) SetTimestamp(time uint32)     { e.native.Timestamp = time }
func (e *ControllerAxisEvent) Get() sdl.ControllerAxisEvent { return e.native }
func (e *ControllerAxisEvent) Native() sdl.Event            { n := e.native; return &n }

func (e *ControllerAxisEvent) Which() int32                      { return int32(e.native.Which) }
func (e *ControllerAxisEvent) SetWhich(which int32)              { set(&e.native.Which, which) }
func (e *ControllerAxisEvent) Axis() input.ControllerAxis        { return input.ControllerAxis(e.native.Axis) }
func (e *ControllerAxisEvent) SetAxis(axis input.ControllerAxis) { set(&e.native.Axis, axis) }
func (e *ControllerAxisEvent) Value() int16                      { return e.native.Value }
func (e *ControllerAxisEvent) SetValue(value int16)              { e.native.Value = value }

// ControllerButtonEvent reports a game controller button press or release.
type ControllerButtonEvent struct {
	native sdl.ControllerButtonEvent
}

// NewControllerButtonEvent creates a ControllerButtonDown event.
func NewControllerButtonEvent() *ControllerButtonEvent {
	return &ControllerButtonEvent{native: sdl.ControllerButtonEvent{
		Type:  uint32(ControllerButtonDown),
		State: uint8(Pressed),
	}}
}

func FromControllerButtonEvent(native sdl.ControllerButtonEvent) *ControllerButtonEvent {
	return &ControllerButtonEvent{native: native}
}

func (e *ControllerButtonEvent) Type() Type                     { return Type(e.native.Type) }
func (e *ControllerButtonEvent) SetType(t Type)                 { e.native.Type = uint32(t) }
func (e *ControllerButtonEvent) Timestamp() uint32              { return e.native.Timestamp }
func (e *ControllerButtonEvent) SetTimestamp(time uint32)       { e.native.Timestamp = time }
func (e *ControllerButtonEvent) Get() sdl.ControllerButtonEvent { return e.native }
func (e *ControllerButtonEvent) Native() sdl.Event              { n := e.native; return &n }

func (e *ControllerButtonEvent) Which() int32         { return int32(e.native.Which) }
func (e *ControllerButtonEvent) SetWhich(which int32) { set(&e.native.Which, which) }
func (e *ControllerButtonEvent) Button() input.ControllerButton {
	return input.ControllerButton(e.native.Button)
}
func (e *ControllerButtonEvent) SetButton(button input.ControllerButton) {
	set(&e.native.Button, button)
}
func (e *ControllerButtonEvent) State() ButtonState         { return ButtonState(e.native.State) }
func (e *ControllerButtonEvent) SetState(state ButtonState) { set(&e.native.State, state) }
func (e *ControllerButtonEvent) Pressed() bool              { return e.State() == Pressed }

// ControllerDeviceEvent reports a game controller being attached, detached or remapped.
type ControllerDeviceEvent struct {
	native sdl.ControllerDeviceEvent
}

// NewControllerDeviceEvent creates a ControllerDeviceAdded event.
func NewControllerDeviceEvent() *ControllerDeviceEvent {
	return &ControllerDeviceEvent{native: sdl.ControllerDeviceEvent{Type: uint32(ControllerDeviceAdded)}}
}

func FromControllerDeviceEvent(native sdl.ControllerDeviceEvent) *ControllerDeviceEvent {
	return &ControllerDeviceEvent{native: native}
}

func (e *ControllerDeviceEvent) Type() Type                     { return Type(e.native.Type) }
func (e *ControllerDeviceEvent) SetType(t Type)                 { e.native.Type = uint32(t) }
func (e *ControllerDeviceEvent) Timestamp() uint32              { return e.native.Timestamp }
func (e *ControllerDeviceEvent) SetTimestamp(time uint32)       { e.native.Timestamp = time }
func (e *ControllerDeviceEvent) Get() sdl.ControllerDeviceEvent { return e.native }
func (e *ControllerDeviceEvent) Native() sdl.Event              { n := e.native; return &n }

// Which is the device index when added and the instance id otherwise.
func (e *ControllerDeviceEvent) Which() int32         { return int32(e.native.Which) }
func (e *ControllerDeviceEvent) SetWhich(which int32) { set(&e.native.Which, which) }
