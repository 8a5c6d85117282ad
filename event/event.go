package event

import (
	"bytes"

	"github.com/veandco/go-sdl2/sdl"
)

// Event is implemented by every wrapper.  Each wrapper holds a copy of one member of SDL's event union.
type Event interface {
	Type() Type
	Timestamp() uint32

	// Native rebuilds the union member with its discriminant set, ready for sdl.PushEvent.
	Native() sdl.Event
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// set writes v into a native field of any integer type.
func set[T, V integer](field *T, v V) {
	*field = T(v)
}

func boolByte(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

// textFrom reads a NUL terminated fixed-size text field.
func textFrom(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}

// textTo writes s into a fixed-size text field, truncating so a terminating NUL always fits.
func textTo(field []byte, s string) {
	clear(field)
	copy(field[:len(field)-1], s)
}

// QuitEvent is sent when the application is asked to terminate.
type QuitEvent struct {
	native sdl.QuitEvent
}

func NewQuitEvent() *QuitEvent {
	return &QuitEvent{native: sdl.QuitEvent{Type: uint32(Quit)}}
}

func FromQuitEvent(native sdl.QuitEvent) *QuitEvent { return &QuitEvent{native: native} }

func (e *QuitEvent) Type() Type               { return Type(e.native.Type) }
func (e *QuitEvent) SetType(t Type)           { e.native.Type = uint32(t) }
func (e *QuitEvent) Timestamp() uint32        { return e.native.Timestamp }
func (e *QuitEvent) SetTimestamp(time uint32) { e.native.Timestamp = time }
func (e *QuitEvent) Get() sdl.QuitEvent       { return e.native }
func (e *QuitEvent) Native() sdl.Event        { n := e.native; return &n }

// WindowEvent reports a change in a window's state.
type WindowEvent struct {
	native sdl.WindowEvent
}

func NewWindowEvent() *WindowEvent {
	return &WindowEvent{native: sdl.WindowEvent{Type: uint32(Window)}}
}

func FromWindowEvent(native sdl.WindowEvent) *WindowEvent { return &WindowEvent{native: native} }

func (e *WindowEvent) Type() Type               { return Type(e.native.Type) }
func (e *WindowEvent) SetType(t Type)           { e.native.Type = uint32(t) }
func (e *WindowEvent) Timestamp() uint32        { return e.native.Timestamp }
func (e *WindowEvent) SetTimestamp(time uint32) { e.native.Timestamp = time }
func (e *WindowEvent) Get() sdl.WindowEvent     { return e.native }
func (e *WindowEvent) Native() sdl.Event        { n := e.native; return &n }

func (e *WindowEvent) WindowID() uint32            { return e.native.WindowID }
func (e *WindowEvent) SetWindowID(id uint32)       { e.native.WindowID = id }
func (e *WindowEvent) EventID() WindowEventID      { return WindowEventID(e.native.Event) }
func (e *WindowEvent) SetEventID(id WindowEventID) { set(&e.native.Event, id) }

// Data1 is the new x position or width, depending on the event id.
func (e *WindowEvent) Data1() int32 { return e.native.Data1 }

// Data2 is the new y position or height, depending on the event id.
func (e *WindowEvent) Data2() int32 { return e.native.Data2 }

func (e *WindowEvent) SetData1(v int32) { e.native.Data1 = v }
func (e *WindowEvent) SetData2(v int32) { e.native.Data2 = v }
