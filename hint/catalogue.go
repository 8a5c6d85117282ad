package hint

import "github.com/ignite-laboratories/centurion"

// ScaleQuality selects texture filtering.
type ScaleQuality int

const (
	Nearest ScaleQuality = iota
	Linear
	Best
)

var scaleQualityNames = map[ScaleQuality]string{Nearest: "Nearest", Linear: "Linear", Best: "Best"}

func (q ScaleQuality) String() string {
	return centurion.EnumName(scaleQualityNames, "ScaleQuality", q)
}

// RenderDriver selects the 2D rendering backend.
type RenderDriver int

const (
	Direct3D RenderDriver = iota
	Direct3D11
	Direct3D12
	OpenGL
	OpenGLES
	OpenGLES2
	Metal
	Software
)

var renderDriverNames = map[RenderDriver]string{
	Direct3D:   "Direct3D",
	Direct3D11: "Direct3D11",
	Direct3D12: "Direct3D12",
	OpenGL:     "OpenGL",
	OpenGLES:   "OpenGLES",
	OpenGLES2:  "OpenGLES2",
	Metal:      "Metal",
	Software:   "Software",
}

func (d RenderDriver) String() string {
	return centurion.EnumName(renderDriverNames, "RenderDriver", d)
}

// LogicalSizeMode selects how a logical render size is fitted to the window.
type LogicalSizeMode int

const (
	Letterbox LogicalSizeMode = iota
	Overscan
)

var logicalSizeModeNames = map[LogicalSizeMode]string{Letterbox: "Letterbox", Overscan: "Overscan"}

func (m LogicalSizeMode) String() string {
	return centurion.EnumName(logicalSizeModeNames, "LogicalSizeMode", m)
}

// ResamplingMode selects the audio resampler quality.
type ResamplingMode int

const (
	ResampleDefault ResamplingMode = iota
	ResampleFast
	ResampleMedium
	ResampleBest
)

var resamplingModeNames = map[ResamplingMode]string{
	ResampleDefault: "Default",
	ResampleFast:    "Fast",
	ResampleMedium:  "Medium",
	ResampleBest:    "Best",
}

func (m ResamplingMode) String() string {
	return centurion.EnumName(resamplingModeNames, "ResamplingMode", m)
}

var (
	scaleQualities = NewBimap(map[ScaleQuality]string{
		Nearest: "nearest",
		Linear:  "linear",
		Best:    "best",
	})
	renderDrivers = NewBimap(map[RenderDriver]string{
		Direct3D:   "direct3d",
		Direct3D11: "direct3d11",
		Direct3D12: "direct3d12",
		OpenGL:     "opengl",
		OpenGLES:   "opengles",
		OpenGLES2:  "opengles2",
		Metal:      "metal",
		Software:   "software",
	})
	logicalSizeModes = NewBimap(map[LogicalSizeMode]string{
		Letterbox: "letterbox",
		Overscan:  "overscan",
	})
	resamplingModes = NewBimap(map[ResamplingMode]string{
		ResampleDefault: "default",
		ResampleFast:    "fast",
		ResampleMedium:  "medium",
		ResampleBest:    "best",
	})
)

// Rendering
var (
	RenderDriverHint    = Enum("SDL_RENDER_DRIVER", renderDrivers)
	RenderScaleQuality  = Enum("SDL_RENDER_SCALE_QUALITY", scaleQualities)
	RenderLogicalSize   = Enum("SDL_RENDER_LOGICAL_SIZE_MODE", logicalSizeModes)
	RenderVSync         = Bool("SDL_RENDER_VSYNC")
	RenderBatching      = Bool("SDL_RENDER_BATCHING")
	RenderOpenGLShaders = Bool("SDL_RENDER_OPENGL_SHADERS")
)

// Video and windowing
var (
	VideoDriver             = String("SDL_VIDEODRIVER")
	AllowScreensaver        = Bool("SDL_VIDEO_ALLOW_SCREENSAVER")
	HighDPIDisabled         = Bool("SDL_VIDEO_HIGHDPI_DISABLED")
	MinimizeOnFocusLoss     = Bool("SDL_VIDEO_MINIMIZE_ON_FOCUS_LOSS")
	FramebufferAcceleration = String("SDL_FRAMEBUFFER_ACCELERATION")
	X11BypassCompositor     = Bool("SDL_VIDEO_X11_NET_WM_BYPASS_COMPOSITOR")
	QuitOnLastWindowClose   = Bool("SDL_QUIT_ON_LAST_WINDOW_CLOSE")
	AppName                 = String("SDL_APP_NAME")
)

// Input
var (
	MouseDoubleClickTime     = Int("SDL_MOUSE_DOUBLE_CLICK_TIME")
	MouseRelativeModeWarp    = Bool("SDL_MOUSE_RELATIVE_MODE_WARP")
	JoystickBackgroundEvents = Bool("SDL_JOYSTICK_ALLOW_BACKGROUND_EVENTS")
	GameControllerConfig     = String("SDL_GAMECONTROLLERCONFIG")
	EnableScreenKeyboard     = Bool("SDL_ENABLE_SCREEN_KEYBOARD")
)

// Audio, timing and diagnostics
var (
	AudioDriver      = String("SDL_AUDIODRIVER")
	AudioResampling  = Enum("SDL_AUDIO_RESAMPLING_MODE", resamplingModes)
	TimerResolution  = Int("SDL_TIMER_RESOLUTION")
	EventLogging     = Int("SDL_EVENT_LOGGING")
	NoSignalHandlers = Bool("SDL_NO_SIGNAL_HANDLERS")
)
