package centurion

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/core/std"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Config selects which native libraries Init brings up.
type Config struct {
	Core      bool
	CoreFlags uint32

	Image      bool
	ImageFlags int

	Mixer          bool
	MixerFlags     int
	MixerFrequency int
	MixerFormat    uint16
	MixerChannels  int
	MixerChunkSize int

	TTF bool

	// Pinned runs every native call issued through Library.Do on one dedicated OS thread.
	Pinned bool
}

// Init flags mirrored from SDL.h, SDL_image.h and SDL_mixer.h.
const (
	InitTimer          uint32 = 0x00000001
	InitAudio          uint32 = 0x00000010
	InitVideo          uint32 = 0x00000020
	InitJoystick       uint32 = 0x00000200
	InitHaptic         uint32 = 0x00001000
	InitGameController uint32 = 0x00002000
	InitEvents         uint32 = 0x00004000
	InitSensor         uint32 = 0x00008000
	InitEverything            = InitTimer | InitAudio | InitVideo | InitJoystick | InitHaptic |
		InitGameController | InitEvents | InitSensor

	ImageJPG  = 0x1
	ImagePNG  = 0x2
	ImageTIF  = 0x4
	ImageWEBP = 0x8

	MixerFLAC = 0x01
	MixerMOD  = 0x02
	MixerMP3  = 0x08
	MixerOGG  = 0x10
	MixerMID  = 0x20
	MixerOPUS = 0x40
)

// DefaultConfig enables every library with SDL_mixer's usual device parameters.
func DefaultConfig() Config {
	return Config{
		Core:           true,
		CoreFlags:      InitEverything,
		Image:          true,
		ImageFlags:     ImageJPG | ImagePNG | ImageTIF | ImageWEBP,
		Mixer:          true,
		MixerFlags:     MixerFLAC | MixerMOD | MixerMP3 | MixerOGG | MixerMID | MixerOPUS,
		MixerFrequency: 44100,
		MixerFormat:    0x8010,
		MixerChannels:  2,
		MixerChunkSize: 2048,
		TTF:            true,
	}
}

// Library owns the initialised state of SDL and its satellite libraries.
type Library struct {
	config  Config
	synchro std.Synchro
	running atomic.Bool
	done    chan struct{}
	once    sync.Once

	core, image, mixer, audio, ttf bool
}

// Init initialises the libraries selected by cfg.  On failure, everything that was already brought up
// is shut down again before the error is returned.
func Init(cfg Config) (*Library, error) {
	l := &Library{config: cfg}
	if cfg.Pinned {
		l.start()
	}

	var err error
	l.Do(func() {
		err = l.init()
	})
	if err != nil {
		l.Do(l.quit)
		l.stop()
		return nil, err
	}

	core.Verbosef(ModuleName, "library initialized\n")
	return l, nil
}

// Do runs action on the library's native thread, blocking until it returns.  Without a pinned thread
// the action runs on the calling goroutine.  Do must not be called from within another Do.
func (l *Library) Do(action func()) {
	if l.synchro == nil || !l.running.Load() {
		action()
		return
	}
	l.synchro.Send(action)
}

// Pinned reports whether native calls are marshalled onto a dedicated OS thread.
func (l *Library) Pinned() bool {
	return l.synchro != nil && l.running.Load()
}

// Config returns the configuration the library was initialised with.
func (l *Library) Config() Config {
	return l.config
}

// Close shuts every initialised library down in reverse order.  Subsequent calls are no-ops.
func (l *Library) Close() {
	l.once.Do(func() {
		l.Do(l.quit)
		l.stop()
		core.Verbosef(ModuleName, "library shut down\n")
	})
}

func (l *Library) init() error {
	if l.config.Core {
		if err := sdl.Init(l.config.CoreFlags); err != nil {
			return errors.Wrap(Wrap(SDL, err), "failed to initialize SDL")
		}
		l.core = true

		driver, _ := sdl.GetCurrentVideoDriver()
		core.Verbosef(ModuleName, "SDL video driver: %s\n", driver)
	}

	if l.config.Image {
		if err := img.Init(l.config.ImageFlags); err != nil {
			return errors.Wrap(Wrap(IMG, err), "failed to initialize SDL_image")
		}
		l.image = true
	}

	if l.config.Mixer {
		if err := mix.Init(l.config.MixerFlags); err != nil {
			return errors.Wrap(Wrap(MIX, err), "failed to initialize SDL_mixer")
		}
		l.mixer = true

		c := l.config
		if err := mix.OpenAudio(c.MixerFrequency, c.MixerFormat, c.MixerChannels, c.MixerChunkSize); err != nil {
			return errors.Wrap(Wrap(MIX, err), "failed to open audio device")
		}
		l.audio = true
	}

	if l.config.TTF {
		if err := ttf.Init(); err != nil {
			return errors.Wrap(Wrap(TTF, err), "failed to initialize SDL_ttf")
		}
		l.ttf = true
	}
	return nil
}

func (l *Library) quit() {
	if l.ttf {
		ttf.Quit()
		l.ttf = false
	}
	if l.audio {
		mix.CloseAudio()
		l.audio = false
	}
	if l.mixer {
		mix.Quit()
		l.mixer = false
	}
	if l.image {
		img.Quit()
		l.image = false
	}
	if l.core {
		sdl.Quit()
		l.core = false
	}
}

func (l *Library) start() {
	l.synchro = make(std.Synchro)
	l.done = make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(l.done)

		core.Verbosef(ModuleName, "native thread started\n")
		l.running.Store(true)
		wg.Done()

		for l.running.Load() {
			l.synchro.Engage()

			// Native calls are rare compared to the poll rate, 1kHz is plenty.
			time.Sleep(time.Millisecond)
		}
		core.Verbosef(ModuleName, "native thread stopped\n")
	}()
	wg.Wait()
}

func (l *Library) stop() {
	if l.synchro == nil || !l.running.Load() {
		return
	}
	l.running.Store(false)
	<-l.done
}
