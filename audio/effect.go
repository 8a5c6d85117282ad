package audio

import (
	"time"

	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/mix"
)

var errNullEffect = &centurion.Error{Library: centurion.MIX, Message: "cannot play a null sound effect"}

// SoundEffect wraps Mix_Chunk, a sample decoded into memory and mixed on a channel.
type SoundEffect struct {
	res     centurion.Resource[*mix.Chunk]
	channel Channel
}

// LoadSoundEffect decodes a WAV (or any format SDL_mixer supports for chunks) into memory.
func LoadSoundEffect(path string) (*SoundEffect, error) {
	ptr, err := mix.LoadWAV(path)
	res, err := centurion.Acquire(centurion.MIX, ptr, err, func(c *mix.Chunk) {
		c.Free()
	})
	if err != nil {
		return nil, err
	}
	return &SoundEffect{res: res, channel: noChannel}, nil
}

// SoundEffectHandle aliases a chunk owned elsewhere.
func SoundEffectHandle(ptr *mix.Chunk) *SoundEffect {
	return &SoundEffect{res: centurion.Borrowed(ptr), channel: noChannel}
}

// Handle returns a non-owning alias.
func (e *SoundEffect) Handle() *SoundEffect {
	return &SoundEffect{res: e.res.Borrow(), channel: noChannel}
}

func (e *SoundEffect) Get() *mix.Chunk { return e.res.Get() }
func (e *SoundEffect) Valid() bool     { return e != nil && e.res.Valid() }
func (e *SoundEffect) Close()          { e.res.Close() }

// Play mixes the effect on channel, or the first free channel for AnyChannel, and returns the channel
// used.
func (e *SoundEffect) Play(channel Channel, loops int) (Channel, error) {
	if !e.Valid() {
		return 0, errNullEffect
	}
	used, err := e.res.Get().Play(int(channel), loops)
	if err != nil {
		return 0, centurion.Wrap(centurion.MIX, err)
	}
	e.channel = Channel(used)
	return e.channel, nil
}

// FadeIn plays the effect with a volume ramp over fade.
func (e *SoundEffect) FadeIn(channel Channel, loops int, fade time.Duration) (Channel, error) {
	if !e.Valid() {
		return 0, errNullEffect
	}
	used, err := e.res.Get().FadeIn(int(channel), loops, milliseconds(fade))
	if err != nil {
		return 0, centurion.Wrap(centurion.MIX, err)
	}
	e.channel = Channel(used)
	return e.channel, nil
}

// Volume returns the effect's own volume in [0, MaxVolume], or 0 for a null effect.
func (e *SoundEffect) Volume() int {
	if !e.Valid() {
		return 0
	}
	return e.res.Get().Volume(-1)
}

// SetVolume sets the effect's own volume, clamped to [0, MaxVolume], and returns the previous volume.
func (e *SoundEffect) SetVolume(volume int) int {
	if !e.Valid() {
		return 0
	}
	return e.res.Get().Volume(clampVolume(volume))
}

// Channel returns the channel the effect was last played on.  ok is false if it never played.
func (e *SoundEffect) Channel() (channel Channel, ok bool) {
	return e.channel, e.channel != noChannel
}

// Playing reports whether the channel the effect was last played on is still playing.
func (e *SoundEffect) Playing() bool {
	return e.channel != noChannel && e.channel.Playing()
}

// Stop halts the channel the effect was last played on.
func (e *SoundEffect) Stop() {
	if e.channel != noChannel {
		e.channel.Halt()
	}
}

// FadeOut fades out the channel the effect was last played on.
func (e *SoundEffect) FadeOut(fade time.Duration) {
	if e.channel != noChannel {
		e.channel.FadeOut(fade)
	}
}
