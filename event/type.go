package event

import "github.com/ignite-laboratories/centurion"

// Type mirrors SDL_EventType, the discriminant of the event union.
type Type uint32

const (
	First Type = 0

	Quit                   Type = 0x100
	AppTerminating         Type = 0x101
	AppLowMemory           Type = 0x102
	AppWillEnterBackground Type = 0x103
	AppDidEnterBackground  Type = 0x104
	AppWillEnterForeground Type = 0x105
	AppDidEnterForeground  Type = 0x106
	LocaleChanged          Type = 0x107

	Display Type = 0x150

	Window Type = 0x200
	SysWM  Type = 0x201

	KeyDown       Type = 0x300
	KeyUp         Type = 0x301
	TextEditing   Type = 0x302
	TextInput     Type = 0x303
	KeymapChanged Type = 0x304

	MouseMotion     Type = 0x400
	MouseButtonDown Type = 0x401
	MouseButtonUp   Type = 0x402
	MouseWheel      Type = 0x403

	JoyAxisMotion    Type = 0x600
	JoyBallMotion    Type = 0x601
	JoyHatMotion     Type = 0x602
	JoyButtonDown    Type = 0x603
	JoyButtonUp      Type = 0x604
	JoyDeviceAdded   Type = 0x605
	JoyDeviceRemoved Type = 0x606

	ControllerAxisMotion     Type = 0x650
	ControllerButtonDown     Type = 0x651
	ControllerButtonUp       Type = 0x652
	ControllerDeviceAdded    Type = 0x653
	ControllerDeviceRemoved  Type = 0x654
	ControllerDeviceRemapped Type = 0x655
	ControllerTouchpadDown   Type = 0x656
	ControllerTouchpadMotion Type = 0x657
	ControllerTouchpadUp     Type = 0x658
	ControllerSensorUpdate   Type = 0x659

	FingerDown   Type = 0x700
	FingerUp     Type = 0x701
	FingerMotion Type = 0x702

	DollarGesture Type = 0x800
	DollarRecord  Type = 0x801
	MultiGesture  Type = 0x802

	ClipboardUpdate Type = 0x900

	DropFile     Type = 0x1000
	DropText     Type = 0x1001
	DropBegin    Type = 0x1002
	DropComplete Type = 0x1003

	AudioDeviceAdded   Type = 0x1100
	AudioDeviceRemoved Type = 0x1101

	SensorUpdate Type = 0x1200

	RenderTargetsReset Type = 0x2000
	RenderDeviceReset  Type = 0x2001

	User Type = 0x8000
	Last Type = 0xFFFF
)

var typeNames = map[Type]string{
	First:                    "First",
	Quit:                     "Quit",
	AppTerminating:           "AppTerminating",
	AppLowMemory:             "AppLowMemory",
	AppWillEnterBackground:   "AppWillEnterBackground",
	AppDidEnterBackground:    "AppDidEnterBackground",
	AppWillEnterForeground:   "AppWillEnterForeground",
	AppDidEnterForeground:    "AppDidEnterForeground",
	LocaleChanged:            "LocaleChanged",
	Display:                  "Display",
	Window:                   "Window",
	SysWM:                    "SysWM",
	KeyDown:                  "KeyDown",
	KeyUp:                    "KeyUp",
	TextEditing:              "TextEditing",
	TextInput:                "TextInput",
	KeymapChanged:            "KeymapChanged",
	MouseMotion:              "MouseMotion",
	MouseButtonDown:          "MouseButtonDown",
	MouseButtonUp:            "MouseButtonUp",
	MouseWheel:               "MouseWheel",
	JoyAxisMotion:            "JoyAxisMotion",
	JoyBallMotion:            "JoyBallMotion",
	JoyHatMotion:             "JoyHatMotion",
	JoyButtonDown:            "JoyButtonDown",
	JoyButtonUp:              "JoyButtonUp",
	JoyDeviceAdded:           "JoyDeviceAdded",
	JoyDeviceRemoved:         "JoyDeviceRemoved",
	ControllerAxisMotion:     "ControllerAxisMotion",
	ControllerButtonDown:     "ControllerButtonDown",
	ControllerButtonUp:       "ControllerButtonUp",
	ControllerDeviceAdded:    "ControllerDeviceAdded",
	ControllerDeviceRemoved:  "ControllerDeviceRemoved",
	ControllerDeviceRemapped: "ControllerDeviceRemapped",
	ControllerTouchpadDown:   "ControllerTouchpadDown",
	ControllerTouchpadMotion: "ControllerTouchpadMotion",
	ControllerTouchpadUp:     "ControllerTouchpadUp",
	ControllerSensorUpdate:   "ControllerSensorUpdate",
	FingerDown:               "FingerDown",
	FingerUp:                 "FingerUp",
	FingerMotion:             "FingerMotion",
	DollarGesture:            "DollarGesture",
	DollarRecord:             "DollarRecord",
	MultiGesture:             "MultiGesture",
	ClipboardUpdate:          "ClipboardUpdate",
	DropFile:                 "DropFile",
	DropText:                 "DropText",
	DropBegin:                "DropBegin",
	DropComplete:             "DropComplete",
	AudioDeviceAdded:         "AudioDeviceAdded",
	AudioDeviceRemoved:       "AudioDeviceRemoved",
	SensorUpdate:             "SensorUpdate",
	RenderTargetsReset:       "RenderTargetsReset",
	RenderDeviceReset:        "RenderDeviceReset",
	User:                     "User",
	Last:                     "Last",
}

func (t Type) String() string {
	return centurion.EnumName(typeNames, "Type", t)
}

// Registered reports whether t lies in the range handed out by RegisterUserEvents.
func (t Type) Registered() bool {
	return t >= User && t < Last
}

// WindowEventID mirrors SDL_WindowEventID, the sub-type of a Window event.
type WindowEventID uint8

const (
	WindowNone WindowEventID = iota
	WindowShown
	WindowHidden
	WindowExposed
	WindowMoved
	WindowResized
	WindowSizeChanged
	WindowMinimized
	WindowMaximized
	WindowRestored
	WindowEnter
	WindowLeave
	WindowFocusGained
	WindowFocusLost
	WindowClose
	WindowTakeFocus
	WindowHitTest
)

var windowEventIDNames = map[WindowEventID]string{
	WindowNone:        "None",
	WindowShown:       "Shown",
	WindowHidden:      "Hidden",
	WindowExposed:     "Exposed",
	WindowMoved:       "Moved",
	WindowResized:     "Resized",
	WindowSizeChanged: "SizeChanged",
	WindowMinimized:   "Minimized",
	WindowMaximized:   "Maximized",
	WindowRestored:    "Restored",
	WindowEnter:       "Enter",
	WindowLeave:       "Leave",
	WindowFocusGained: "FocusGained",
	WindowFocusLost:   "FocusLost",
	WindowClose:       "Close",
	WindowTakeFocus:   "TakeFocus",
	WindowHitTest:     "HitTest",
}

func (id WindowEventID) String() string {
	return centurion.EnumName(windowEventIDNames, "WindowEventID", id)
}

// ButtonState mirrors SDL_PRESSED and SDL_RELEASED.
type ButtonState uint8

const (
	Released ButtonState = iota
	Pressed
)

var buttonStateNames = map[ButtonState]string{
	Released: "Released",
	Pressed:  "Pressed",
}

func (s ButtonState) String() string {
	return centurion.EnumName(buttonStateNames, "ButtonState", s)
}

// WheelDirection mirrors SDL_MouseWheelDirection.
type WheelDirection uint32

const (
	WheelNormal WheelDirection = iota
	WheelFlipped
)

var wheelDirectionNames = map[WheelDirection]string{
	WheelNormal:  "Normal",
	WheelFlipped: "Flipped",
}

func (d WheelDirection) String() string {
	return centurion.EnumName(wheelDirectionNames, "WheelDirection", d)
}
