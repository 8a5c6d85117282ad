package input

// #cgo LDFLAGS: -lSDL2
// #include "SDL2/SDL.h"
import "C"

import (
	"unsafe"

	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
	"github.com/veandco/go-sdl2/sdl"
)

// Axis limits reported by SDL_JoystickGetAxis.
const (
	AxisMax int16 = 32767
	AxisMin int16 = -32768
)

// HatState mirrors SDL's SDL_HAT_* values.
type HatState uint8

const (
	HatCentered  HatState = 0x00
	HatUp        HatState = 0x01
	HatRight     HatState = 0x02
	HatDown      HatState = 0x04
	HatLeft      HatState = 0x08
	HatRightUp            = HatRight | HatUp
	HatRightDown          = HatRight | HatDown
	HatLeftUp             = HatLeft | HatUp
	HatLeftDown           = HatLeft | HatDown
)

var hatStateNames = map[HatState]string{
	HatCentered:  "Centered",
	HatUp:        "Up",
	HatRight:     "Right",
	HatDown:      "Down",
	HatLeft:      "Left",
	HatRightUp:   "RightUp",
	HatRightDown: "RightDown",
	HatLeftUp:    "LeftUp",
	HatLeftDown:  "LeftDown",
}

func (h HatState) String() string {
	return centurion.EnumName(hatStateNames, "HatState", h)
}

// PowerLevel mirrors SDL_JoystickPowerLevel.
type PowerLevel int

const (
	PowerUnknown PowerLevel = iota - 1
	PowerEmpty
	PowerLow
	PowerMedium
	PowerFull
	PowerWired
	PowerMax
)

var powerLevelNames = map[PowerLevel]string{
	PowerUnknown: "Unknown",
	PowerEmpty:   "Empty",
	PowerLow:     "Low",
	PowerMedium:  "Medium",
	PowerFull:    "Full",
	PowerWired:   "Wired",
	PowerMax:     "Max",
}

func (p PowerLevel) String() string {
	return centurion.EnumName(powerLevelNames, "PowerLevel", p)
}

// JoystickCount returns the number of attached joysticks.
func JoystickCount() int {
	return sdl.NumJoysticks()
}

// UpdateJoysticks polls joystick state.  Only needed when joystick events are disabled.
func UpdateJoysticks() {
	sdl.JoystickUpdate()
}

// Joystick wraps SDL_Joystick.
type Joystick struct {
	res centurion.Resource[*sdl.Joystick]
}

// OpenJoystick opens the joystick at device index.
func OpenJoystick(index int) (*Joystick, error) {
	res, err := centurion.Acquire(centurion.SDL, sdl.JoystickOpen(index), nil, func(j *sdl.Joystick) {
		j.Close()
	})
	if err != nil {
		return nil, err
	}
	j := &Joystick{res: res}
	core.Verbosef(ModuleName, "joystick [%d] opened: %s\n", j.InstanceID(), j.Name())
	return j, nil
}

// JoystickHandle aliases a joystick owned elsewhere.
func JoystickHandle(ptr *sdl.Joystick) *Joystick {
	return &Joystick{res: centurion.Borrowed(ptr)}
}

// JoystickFromInstanceID returns a handle to an opened joystick; it is invalid when none matches.
func JoystickFromInstanceID(id int32) *Joystick {
	return JoystickHandle(sdl.JoystickFromInstanceID(sdl.JoystickID(id)))
}

// Handle returns a non-owning alias.
func (j *Joystick) Handle() *Joystick {
	return &Joystick{res: j.res.Borrow()}
}

func (j *Joystick) Get() *sdl.Joystick { return j.res.Get() }
func (j *Joystick) Valid() bool        { return j.res.Valid() }
func (j *Joystick) Close()             { j.res.Close() }

func (j *Joystick) native() *C.SDL_Joystick {
	return (*C.SDL_Joystick)(unsafe.Pointer(j.res.Get()))
}

func (j *Joystick) Name() string     { return j.res.Get().Name() }
func (j *Joystick) Attached() bool   { return j.res.Get().Attached() }
func (j *Joystick) AxisCount() int   { return j.res.Get().NumAxes() }
func (j *Joystick) ButtonCount() int { return j.res.Get().NumButtons() }
func (j *Joystick) HatCount() int    { return j.res.Get().NumHats() }
func (j *Joystick) BallCount() int   { return j.res.Get().NumBalls() }

// InstanceID identifies the joystick in events for as long as it stays attached.
func (j *Joystick) InstanceID() int32 {
	return int32(j.res.Get().InstanceID())
}

// GUID returns the joystick's GUID as a hex string.
func (j *Joystick) GUID() string {
	return sdl.JoystickGetGUIDString(j.res.Get().GUID())
}

// Axis returns the position of an axis in [AxisMin, AxisMax].
func (j *Joystick) Axis(axis int) int16 {
	return j.res.Get().Axis(axis)
}

// Button reports whether a button is pressed.
func (j *Joystick) Button(button int) bool {
	return j.res.Get().Button(button) != 0
}

// Hat returns the position of a hat switch.
func (j *Joystick) Hat(hat int) HatState {
	return HatState(j.res.Get().Hat(hat))
}

// Ball returns the motion of a trackball since the last call, or false for an invalid ball.
func (j *Joystick) Ball(ball int) (dx, dy int32, ok bool) {
	var x, y C.int
	if C.SDL_JoystickGetBall(j.native(), C.int(ball), &x, &y) != 0 {
		return 0, 0, false
	}
	return int32(x), int32(y), true
}

// Power returns the battery level.
func (j *Joystick) Power() PowerLevel {
	return PowerLevel(C.SDL_JoystickCurrentPowerLevel(j.native()))
}
