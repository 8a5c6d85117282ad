package audio

import (
	"time"

	"github.com/veandco/go-sdl2/mix"
)

// Channel is a mixing channel index.  AllChannels addresses every channel at once where SDL_mixer
// allows it.
type Channel int

const (
	AnyChannel  Channel = -1
	AllChannels Channel = -1

	// noChannel marks an effect that has not played yet.
	noChannel Channel = -2
)

// AllocateChannels changes the number of mixing channels and returns the new count.  Shrinking halts
// the channels that are removed.
func AllocateChannels(count int) int {
	return mix.AllocateChannels(count)
}

// ChannelCount returns the number of mixing channels.
func ChannelCount() int {
	return mix.AllocateChannels(-1)
}

// Playing reports whether the channel is playing; for AllChannels, whether any is.
func (c Channel) Playing() bool {
	return mix.Playing(int(c)) != 0
}

// PlayingCount returns how many channels are playing.
func PlayingCount() int {
	return mix.Playing(int(AllChannels))
}

// Paused reports whether the channel is paused; for AllChannels, whether any is.
func (c Channel) Paused() bool {
	return mix.Paused(int(c)) != 0
}

func (c Channel) Pause()  { mix.Pause(int(c)) }
func (c Channel) Resume() { mix.Resume(int(c)) }
func (c Channel) Halt()   { mix.HaltChannel(int(c)) }

// FadeOut ramps the channel down over fade and then halts it.
func (c Channel) FadeOut(fade time.Duration) {
	mix.FadeOutChannel(int(c), milliseconds(fade))
}

// Fading reports the fade state of a single channel.
func (c Channel) Fading() FadeStatus {
	return FadeStatus(mix.FadingChannel(int(c)))
}

// Volume returns the channel volume; for AllChannels, the average.
func (c Channel) Volume() int {
	return mix.Volume(int(c), -1)
}

// SetVolume sets the channel volume, clamped to [0, MaxVolume], and returns the previous volume.
func (c Channel) SetVolume(volume int) int {
	return mix.Volume(int(c), clampVolume(volume))
}
