package audio

import (
	"time"

	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
	"github.com/veandco/go-sdl2/mix"
)

// MaxVolume is the loudest volume accepted by music, effects and channels.
const MaxVolume = 128

// Forever loops a sound until it is halted.
const Forever = -1

// Spec describes the output device.
type Spec struct {
	Frequency int
	Format    Format
	Channels  int
	ChunkSize int
}

// DefaultSpec is SDL_mixer's usual CD-quality stereo configuration.
var DefaultSpec = Spec{
	Frequency: 44100,
	Format:    FormatS16LSB,
	Channels:  2,
	ChunkSize: 2048,
}

// Open opens the mixer device.  Each successful Open must be paired with a Close.
func Open(spec Spec) error {
	if err := mix.OpenAudio(spec.Frequency, uint16(spec.Format), spec.Channels, spec.ChunkSize); err != nil {
		return centurion.Wrap(centurion.MIX, err)
	}
	core.Verbosef(ModuleName, "device opened at %dHz, %v, %d channels\n", spec.Frequency, spec.Format, spec.Channels)
	return nil
}

// Close closes the mixer device.
func Close() {
	mix.CloseAudio()
}

// Opened returns the spec the device actually opened with.
func Opened() (Spec, error) {
	frequency, format, channels, _, err := mix.QuerySpec()
	if err != nil {
		return Spec{}, centurion.Wrap(centurion.MIX, err)
	}
	return Spec{Frequency: frequency, Format: Format(format), Channels: channels}, nil
}

func clampVolume(volume int) int {
	return min(max(volume, 0), MaxVolume)
}

func milliseconds(d time.Duration) int {
	return int(d / time.Millisecond)
}
