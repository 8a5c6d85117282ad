package audio

import (
	"time"

	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/mix"
)

// Music wraps Mix_Music, a streamed track.  Only one track plays at a time, so the playback controls
// act on whichever track is current.
type Music struct {
	res centurion.Resource[*mix.Music]
}

// LoadMusic opens a music file: WAV, MOD, MIDI, OGG, MP3, FLAC or Opus depending on the decoders
// SDL_mixer was initialised with.
func LoadMusic(path string) (*Music, error) {
	ptr, err := mix.LoadMUS(path)
	res, err := centurion.Acquire(centurion.MIX, ptr, err, func(m *mix.Music) {
		m.Free()
	})
	if err != nil {
		return nil, err
	}
	return &Music{res: res}, nil
}

// MusicHandle aliases a track owned elsewhere.
func MusicHandle(ptr *mix.Music) *Music {
	return &Music{res: centurion.Borrowed(ptr)}
}

// Handle returns a non-owning alias.
func (m *Music) Handle() *Music {
	return &Music{res: m.res.Borrow()}
}

func (m *Music) Get() *mix.Music { return m.res.Get() }
func (m *Music) Valid() bool     { return m.res.Valid() }

// Close frees the track, halting it first if it is playing.
func (m *Music) Close() { m.res.Close() }

// Type reports the decoder used for the track.
func (m *Music) Type() MusicType {
	return MusicType(m.res.Get().Type())
}

// Play starts the track, replacing any current one.  loops is the number of extra repetitions;
// Forever repeats until halted.
func (m *Music) Play(loops int) error {
	return centurion.Wrap(centurion.MIX, m.res.Get().Play(loops))
}

// FadeIn starts the track with a volume ramp over fade.
func (m *Music) FadeIn(loops int, fade time.Duration) error {
	return centurion.Wrap(centurion.MIX, m.res.Get().FadeIn(loops, milliseconds(fade)))
}

// PauseMusic pauses the current track.
func PauseMusic() { mix.PauseMusic() }

// ResumeMusic resumes a paused track.
func ResumeMusic() { mix.ResumeMusic() }

// RewindMusic restarts the current track from the beginning.
func RewindMusic() { mix.RewindMusic() }

// HaltMusic stops the current track.
func HaltMusic() { mix.HaltMusic() }

// FadeOutMusic ramps the current track down over fade and then halts it.  It reports false when
// nothing was playing.
func FadeOutMusic(fade time.Duration) bool {
	return mix.FadeOutMusic(milliseconds(fade))
}

// MusicPlaying reports whether a track is playing; a paused track still counts as playing.
func MusicPlaying() bool { return mix.PlayingMusic() }

// MusicPaused reports whether the current track is paused.
func MusicPaused() bool { return mix.PausedMusic() }

// MusicFading reports the fade state of the current track.
func MusicFading() FadeStatus {
	return FadeStatus(mix.FadingMusic())
}

// MusicVolume returns the music volume in [0, MaxVolume].
func MusicVolume() int {
	return mix.VolumeMusic(-1)
}

// SetMusicVolume sets the music volume, clamped to [0, MaxVolume], and returns the previous volume.
func SetMusicVolume(volume int) int {
	return mix.VolumeMusic(clampVolume(volume))
}

// SetMusicPosition seeks the current track.  The unit depends on the format: seconds for OGG, FLAC and
// MP3, patterns for MOD.
func SetMusicPosition(position int64) error {
	return centurion.Wrap(centurion.MIX, mix.SetMusicPosition(position))
}
