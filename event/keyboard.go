package event

import (
	"github.com/ignite-laboratories/centurion/input"
	"github.com/veandco/go-sdl2/sdl"
)

// KeyboardEvent reports a key press or release.
type KeyboardEvent struct {
	native sdl.KeyboardEvent
}

// NewKeyboardEvent creates a KeyDown event.
func NewKeyboardEvent() *KeyboardEvent {
	return &KeyboardEvent{native: sdl.KeyboardEvent{Type: uint32(KeyDown), State: uint8(Pressed)}}
}

func FromKeyboardEvent(native sdl.KeyboardEvent) *KeyboardEvent {
	return &KeyboardEvent{native: native}
}

func (e *KeyboardEvent) Type() Type               { return Type(e.native.Type) }
func (e *KeyboardEvent) SetType(t Type)           { e.native.Type = uint32(t) }
func (e *KeyboardEvent) Timestamp() uint32        { return e.native.Timestamp }
func (e *KeyboardEvent) SetTimestamp(time uint32) { e.native.Timestamp = time }
func (e *KeyboardEvent) Get() sdl.KeyboardEvent   { return e.native }
func (e *KeyboardEvent) Native() sdl.Event        { n := e.native; return &n }

func (e *KeyboardEvent) WindowID() uint32      { return e.native.WindowID }
func (e *KeyboardEvent) SetWindowID(id uint32) { e.native.WindowID = id }

func (e *KeyboardEvent) ScanCode() input.ScanCode        { return input.ScanCode(e.native.Keysym.Scancode) }
func (e *KeyboardEvent) SetScanCode(code input.ScanCode) { set(&e.native.Keysym.Scancode, code) }
func (e *KeyboardEvent) KeyCode() input.KeyCode          { return input.KeyCode(e.native.Keysym.Sym) }
func (e *KeyboardEvent) SetKeyCode(code input.KeyCode)   { set(&e.native.Keysym.Sym, code) }
func (e *KeyboardEvent) Modifiers() input.KeyMod         { return input.KeyMod(e.native.Keysym.Mod) }
func (e *KeyboardEvent) SetModifiers(mods input.KeyMod)  { set(&e.native.Keysym.Mod, mods) }
func (e *KeyboardEvent) IsActive(mods input.KeyMod) bool { return e.Modifiers().Any(mods) }
func (e *KeyboardEvent) State() ButtonState              { return ButtonState(e.native.State) }
func (e *KeyboardEvent) SetState(state ButtonState)      { set(&e.native.State, state) }
func (e *KeyboardEvent) Pressed() bool                   { return e.State() == Pressed }
func (e *KeyboardEvent) Repeated() bool                  { return e.native.Repeat != 0 }
func (e *KeyboardEvent) SetRepeated(repeated bool)       { e.native.Repeat = boolByte(repeated) }
func (e *KeyboardEvent) Is(code input.ScanCode) bool     { return e.ScanCode() == code }
func (e *KeyboardEvent) IsKey(code input.KeyCode) bool   { return e.KeyCode() == code }

// TextInputEvent carries committed text.
type TextInputEvent struct {
	native sdl.TextInputEvent
}

func NewTextInputEvent() *TextInputEvent {
	return &TextInputEvent{native: sdl.TextInputEvent{Type: uint32(TextInput)}}
}

func FromTextInputEvent(native sdl.TextInputEvent) *TextInputEvent {
	return &TextInputEvent{native: native}
}

func (e *TextInputEvent) Type() Type               { return Type(e.native.Type) }
func (e *TextInputEvent) SetType(t Type)           { e.native.Type = uint32(t) }
func (e *TextInputEvent) Timestamp() uint32        { return e.native.Timestamp }
func (e *TextInputEvent) SetTimestamp(time uint32) { e.native.Timestamp = time }
func (e *TextInputEvent) Get() sdl.TextInputEvent  { return e.native }
func (e *TextInputEvent) Native() sdl.Event        { n := e.native; return &n }

func (e *TextInputEvent) WindowID() uint32      { return e.native.WindowID }
func (e *TextInputEvent) SetWindowID(id uint32) { e.native.WindowID = id }

// Text returns the UTF-8 input.
func (e *TextInputEvent) Text() string { return textFrom(e.native.Text[:]) }

// SetText stores text, truncated to fit SDL's fixed-size buffer.
func (e *TextInputEvent) SetText(text string) { textTo(e.native.Text[:], text) }

// TextEditingEvent carries uncommitted composition text from an input method.
type TextEditingEvent struct {
	native sdl.TextEditingEvent
}

func NewTextEditingEvent() *TextEditingEvent {
	return &TextEditingEvent{native: sdl.TextEditingEvent{Type: uint32(TextEditing)}}
}

func FromTextEditingEvent(native sdl.TextEditingEvent) *TextEditingEvent {
	return &TextEditingEvent{native: native}
}

func (e *TextEditingEvent) Type() Type                { return Type(e.native.Type) }
func (e *TextEditingEvent) SetType(t Type)            { e.native.Type = uint32(t) }
func (e *TextEditingEvent) Timestamp() uint32         { return e.native.Timestamp }
func (e *TextEditingEvent) SetTimestamp(time uint32)  { e.native.Timestamp = time }
func (e *TextEditingEvent) Get() sdl.TextEditingEvent { return e.native }
func (e *TextEditingEvent) Native() sdl.Event         { n := e.native; return &n }

func (e *TextEditingEvent) WindowID() uint32      { return e.native.WindowID }
func (e *TextEditingEvent) SetWindowID(id uint32) { e.native.WindowID = id }
func (e *TextEditingEvent) Text() string          { return textFrom(e.native.Text[:]) }
func (e *TextEditingEvent) SetText(text string)   { textTo(e.native.Text[:], text) }

// Start is the cursor position within the composition.
func (e *TextEditingEvent) Start() int32           { return e.native.Start }
func (e *TextEditingEvent) SetStart(start int32)   { e.native.Start = start }
func (e *TextEditingEvent) Length() int32          { return e.native.Length }
func (e *TextEditingEvent) SetLength(length int32) { e.native.Length = length }
