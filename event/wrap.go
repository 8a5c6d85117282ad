package event

import "github.com/veandco/go-sdl2/sdl"

// GenericEvent wraps any union member without a dedicated wrapper.
type GenericEvent struct {
	native sdl.Event
}

func (e *GenericEvent) Type() Type        { return Type(e.native.GetType()) }
func (e *GenericEvent) Timestamp() uint32 { return e.native.GetTimestamp() }
func (e *GenericEvent) Native() sdl.Event { return e.native }

// Wrap selects the wrapper matching a native event.  A nil event yields nil.
func Wrap(native sdl.Event) Event {
	switch e := native.(type) {
	case nil:
		return nil
	case *sdl.QuitEvent:
		return FromQuitEvent(*e)
	case *sdl.WindowEvent:
		return FromWindowEvent(*e)
	case *sdl.KeyboardEvent:
		return FromKeyboardEvent(*e)
	case *sdl.TextInputEvent:
		return FromTextInputEvent(*e)
	case *sdl.TextEditingEvent:
		return FromTextEditingEvent(*e)
	case *sdl.MouseMotionEvent:
		return FromMouseMotionEvent(*e)
	case *sdl.MouseButtonEvent:
		return FromMouseButtonEvent(*e)
	case *sdl.MouseWheelEvent:
		return FromMouseWheelEvent(*e)
	case *sdl.JoyAxisEvent:
		return FromJoyAxisEvent(*e)
	case *sdl.JoyBallEvent:
		return FromJoyBallEvent(*e)
	case *sdl.JoyHatEvent:
		return FromJoyHatEvent(*e)
	case *sdl.JoyButtonEvent:
		return FromJoyButtonEvent(*e)
	case *sdl.JoyDeviceAddedEvent:
		return FromJoyDeviceAddedEvent(*e)
	case *sdl.JoyDeviceRemovedEvent:
		return FromJoyDeviceRemovedEvent(*e)
	case *sdl.ControllerAxisEvent:
		return FromControllerAxisEvent(*e)
	case *sdl.ControllerButtonEvent:
		return FromControllerButtonEvent(*e)
	case *sdl.ControllerDeviceEvent:
		return FromControllerDeviceEvent(*e)
	case *sdl.AudioDeviceEvent:
		return FromAudioDeviceEvent(*e)
	case *sdl.DropEvent:
		return FromDropEvent(*e)
	case *sdl.UserEvent:
		return FromUserEvent(*e)
	case *sdl.TouchFingerEvent:
		return FromTouchFingerEvent(*e)
	default:
		return &GenericEvent{native: native}
	}
}
