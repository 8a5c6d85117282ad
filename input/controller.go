package input

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
	"github.com/veandco/go-sdl2/sdl"
)

// ControllerAxis mirrors SDL_GameControllerAxis.
type ControllerAxis int

const (
	AxisInvalid ControllerAxis = iota - 1
	AxisLeftX
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisTriggerLeft
	AxisTriggerRight
)

var controllerAxisNames = map[ControllerAxis]string{
	AxisInvalid:      "Invalid",
	AxisLeftX:        "LeftX",
	AxisLeftY:        "LeftY",
	AxisRightX:       "RightX",
	AxisRightY:       "RightY",
	AxisTriggerLeft:  "TriggerLeft",
	AxisTriggerRight: "TriggerRight",
}

func (a ControllerAxis) String() string {
	return centurion.EnumName(controllerAxisNames, "ControllerAxis", a)
}

// ControllerButton mirrors SDL_GameControllerButton.
type ControllerButton int

const (
	ButtonInvalid ControllerButton = iota - 1
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonMisc1
	ButtonPaddle1
	ButtonPaddle2
	ButtonPaddle3
	ButtonPaddle4
	ButtonTouchpad
)

var controllerButtonNames = map[ControllerButton]string{
	ButtonInvalid:       "Invalid",
	ButtonA:             "A",
	ButtonB:             "B",
	ButtonX:             "X",
	ButtonY:             "Y",
	ButtonBack:          "Back",
	ButtonGuide:         "Guide",
	ButtonStart:         "Start",
	ButtonLeftStick:     "LeftStick",
	ButtonRightStick:    "RightStick",
	ButtonLeftShoulder:  "LeftShoulder",
	ButtonRightShoulder: "RightShoulder",
	ButtonDPadUp:        "DPadUp",
	ButtonDPadDown:      "DPadDown",
	ButtonDPadLeft:      "DPadLeft",
	ButtonDPadRight:     "DPadRight",
	ButtonMisc1:         "Misc1",
	ButtonPaddle1:       "Paddle1",
	ButtonPaddle2:       "Paddle2",
	ButtonPaddle3:       "Paddle3",
	ButtonPaddle4:       "Paddle4",
	ButtonTouchpad:      "Touchpad",
}

func (b ControllerButton) String() string {
	return centurion.EnumName(controllerButtonNames, "ControllerButton", b)
}

// IsController reports whether the joystick at device index has a game controller mapping.
func IsController(index int) bool {
	return sdl.IsGameController(index)
}

// Controller wraps SDL_GameController, a joystick with a known button layout.
type Controller struct {
	res centurion.Resource[*sdl.GameController]
}

// OpenController opens the game controller at device index.
func OpenController(index int) (*Controller, error) {
	res, err := centurion.Acquire(centurion.SDL, sdl.GameControllerOpen(index), nil, func(c *sdl.GameController) {
		c.Close()
	})
	if err != nil {
		return nil, err
	}
	c := &Controller{res: res}
	core.Verbosef(ModuleName, "controller opened: %s\n", c.Name())
	return c, nil
}

// ControllerHandle aliases a controller owned elsewhere.
func ControllerHandle(ptr *sdl.GameController) *Controller {
	return &Controller{res: centurion.Borrowed(ptr)}
}

// Handle returns a non-owning alias.
func (c *Controller) Handle() *Controller {
	return &Controller{res: c.res.Borrow()}
}

func (c *Controller) Get() *sdl.GameController { return c.res.Get() }
func (c *Controller) Valid() bool              { return c.res.Valid() }
func (c *Controller) Close()                   { c.res.Close() }

func (c *Controller) Name() string   { return c.res.Get().Name() }
func (c *Controller) Attached() bool { return c.res.Get().Attached() }

// Axis returns the position of an axis; triggers range over [0, AxisMax].
func (c *Controller) Axis(axis ControllerAxis) int16 {
	return c.res.Get().Axis(sdl.GameControllerAxis(axis))
}

// Button reports whether a button is pressed.
func (c *Controller) Button(button ControllerButton) bool {
	return c.res.Get().Button(sdl.GameControllerButton(button)) != 0
}

// Joystick returns a handle to the underlying joystick.
func (c *Controller) Joystick() *Joystick {
	return JoystickHandle(c.res.Get().Joystick())
}
