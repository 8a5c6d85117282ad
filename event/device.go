package event

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// AudioDeviceEvent reports an audio device being attached or detached.
type AudioDeviceEvent struct {
	native sdl.AudioDeviceEvent
}

// NewAudioDeviceEvent creates an AudioDeviceAdded event.
func NewAudioDeviceEvent() *AudioDeviceEvent {
	return &AudioDeviceEvent{native: sdl.AudioDeviceEvent{Type: uint32(AudioDeviceAdded)}}
}

func FromAudioDeviceEvent(native sdl.AudioDeviceEvent) *AudioDeviceEvent {
	return &AudioDeviceEvent{native: native}
}

func (e *AudioDeviceEvent) Type() Type                { return Type(e.native.Type) }
func (e *AudioDeviceEvent) SetType(t Type)            { e.native.Type = uint32(t) }
func (e *AudioDeviceEvent) Timestamp() uint32         { return e.native.Timestamp }
func (e *AudioDeviceEvent) SetTimestamp(time uint32)  { e.native.Timestamp = time }
func (e *AudioDeviceEvent) Get() sdl.AudioDeviceEvent { return e.native }
func (e *AudioDeviceEvent) Native() sdl.Event         { n := e.native; return &n }

// Which is the device index when added and the device id when removed.
func (e *AudioDeviceEvent) Which() uint32           { return e.native.Which }
func (e *AudioDeviceEvent) SetWhich(which uint32)   { e.native.Which = which }
func (e *AudioDeviceEvent) Capture() bool           { return e.native.IsCapture != 0 }
func (e *AudioDeviceEvent) SetCapture(capture bool) { e.native.IsCapture = boolByte(capture) }

// DropEvent reports a file or text dropped onto a window, bracketed by DropBegin and DropComplete.
type DropEvent struct {
	native sdl.DropEvent
}

// NewDropEvent creates a DropFile event.
func NewDropEvent() *DropEvent {
	return &DropEvent{native: sdl.DropEvent{Type: uint32(DropFile)}}
}

func FromDropEvent(native sdl.DropEvent) *DropEvent { return &DropEvent{native: native} }

func (e *DropEvent) Type() Type               { return Type(e.native.Type) }
func (e *DropEvent) SetType(t Type)           { e.native.Type = uint32(t) }
func (e *DropEvent) Timestamp() uint32        { return e.native.Timestamp }
func (e *DropEvent) SetTimestamp(time uint32) { e.native.Timestamp = time }
func (e *DropEvent) Get() sdl.DropEvent       { return e.native }
func (e *DropEvent) Native() sdl.Event        { n := e.native; return &n }

// File is the dropped path for DropFile and the dropped text for DropText.
func (e *DropEvent) File() string          { return e.native.File }
func (e *DropEvent) SetFile(file string)   { e.native.File = file }
func (e *DropEvent) WindowID() uint32      { return e.native.WindowID }
func (e *DropEvent) SetWindowID(id uint32) { e.native.WindowID = id }

// UserEvent is an application defined event of a type obtained from RegisterUserEvents.
type UserEvent struct {
	native sdl.UserEvent
}

// NewUserEvent creates an event of type User; set a registered type with SetType.
func NewUserEvent() *UserEvent {
	return &UserEvent{native: sdl.UserEvent{Type: uint32(User)}}
}

func FromUserEvent(native sdl.UserEvent) *UserEvent { return &UserEvent{native: native} }

func (e *UserEvent) Type() Type               { return Type(e.native.Type) }
func (e *UserEvent) SetType(t Type)           { e.native.Type = uint32(t) }
func (e *UserEvent) Timestamp() uint32        { return e.native.Timestamp }
func (e *UserEvent) SetTimestamp(time uint32) { e.native.Timestamp = time }
func (e *UserEvent) Get() sdl.UserEvent       { return e.native }
func (e *UserEvent) Native() sdl.Event        { n := e.native; return &n }

func (e *UserEvent) WindowID() uint32      { return e.native.WindowID }
func (e *UserEvent) SetWindowID(id uint32) { e.native.WindowID = id }
func (e *UserEvent) Code() int32           { return e.native.Code }
func (e *UserEvent) SetCode(code int32)    { e.native.Code = code }

// Data1 and Data2 are opaque to SDL.  They must not point into Go memory once the event is pushed.
func (e *UserEvent) Data1() unsafe.Pointer        { return e.native.Data1 }
func (e *UserEvent) Data2() unsafe.Pointer        { return e.native.Data2 }
func (e *UserEvent) SetData1(data unsafe.Pointer) { e.native.Data1 = data }
func (e *UserEvent) SetData2(data unsafe.Pointer) { e.native.Data2 = data }

// TouchFingerEvent reports a finger touching, moving on or leaving a touch device.
type TouchFingerEvent struct {
	native sdl.TouchFingerEvent
}

// NewTouchFingerEvent creates a FingerDown event.
func NewTouchFingerEvent() *TouchFingerEvent {
	return &TouchFingerEvent{native: sdl.TouchFingerEvent{Type: uint32(FingerDown)}}
}

func FromTouchFingerEvent(native sdl.TouchFingerEvent) *TouchFingerEvent {
	return &TouchFingerEvent{native: native}
}

func (e *TouchFingerEvent) Type() Type                { return Type(e.native.Type) }
func (e *TouchFingerEvent) SetType(t Type)            { e.native.Type = uint32(t) }
func (e *TouchFingerEvent) Timestamp() uint32         { return e.native.Timestamp }
func (e *TouchFingerEvent) SetTimestamp(time uint32)  { e.native.Timestamp = time }
func (e *TouchFingerEvent) Get() sdl.TouchFingerEvent { return e.native }
func (e *TouchFingerEvent) Native() sdl.Event         { n := e.native; return &n }

func (e *TouchFingerEvent) TouchID() int64       { return int64(e.native.TouchID) }
func (e *TouchFingerEvent) SetTouchID(id int64)  { set(&e.native.TouchID, id) }
func (e *TouchFingerEvent) FingerID() int64      { return int64(e.native.FingerID) }
func (e *TouchFingerEvent) SetFingerID(id int64) { set(&e.native.FingerID, id) }

// X and Y are normalized to [0, 1].
func (e *TouchFingerEvent) X() float32 { return e.native.X }
func (e *TouchFingerEvent) Y() float32 { return e.native.Y }

func (e *TouchFingerEvent) SetX(x float32)               { e.native.X = x }
func (e *TouchFingerEvent) SetY(y float32)               { e.native.Y = y }
func (e *TouchFingerEvent) DX() float32                  { return e.native.DX }
func (e *TouchFingerEvent) DY() float32                  { return e.native.DY }
func (e *TouchFingerEvent) SetDX(dx float32)             { e.native.DX = dx }
func (e *TouchFingerEvent) SetDY(dy float32)             { e.native.DY = dy }
func (e *TouchFingerEvent) Pressure() float32            { return e.native.Pressure }
func (e *TouchFingerEvent) SetPressure(pressure float32) { e.native.Pressure = pressure }
