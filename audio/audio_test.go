package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/sdl"
)

var deviceReady bool

func TestMain(m *testing.M) {
	os.Setenv("SDL_AUDIODRIVER", "dummy")
	if sdl.Init(sdl.INIT_AUDIO) == nil {
		deviceReady = Open(DefaultSpec) == nil
	}
	code := m.Run()
	if deviceReady {
		Close()
	}
	sdl.Quit()
	os.Exit(code)
}

func requireDevice(t *testing.T) {
	t.Helper()
	if !deviceReady {
		t.Skip("no audio device")
	}
}

func TestEnumNames(t *testing.T) {
	cases := []struct{ got, want string }{
		{MusicOGG.String(), "OGG"},
		{MusicOpus.String(), "Opus"},
		{FadingIn.String(), "FadingIn"},
		{FormatS16LSB.String(), "S16LSB"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
	if FormatF32LSB.BitSize() != 32 || FormatU8.BitSize() != 8 {
		t.Fatalf("BitSize decodes the low byte of the format")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("undeclared music types must panic")
		}
	}()
	_ = MusicType(42).String()
}

func TestClampVolume(t *testing.T) {
	for in, want := range map[int]int{-5: 0, 0: 0, 64: 64, 128: 128, 500: 128} {
		if got := clampVolume(in); got != want {
			t.Errorf("clampVolume(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestLoadFailuresAreMixerErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.ogg")

	if m, err := LoadMusic(missing); err == nil || m != nil {
		t.Fatalf("LoadMusic of a missing file should fail")
	} else if !errors.Is(err, centurion.ErrMIX) {
		t.Fatalf("expected a MIX error, got %v", err)
	}
	if e, err := LoadSoundEffect(missing); err == nil || e != nil {
		t.Fatalf("LoadSoundEffect of a missing file should fail")
	} else if !errors.Is(err, centurion.ErrMIX) {
		t.Fatalf("expected a MIX error, got %v", err)
	}
}

func TestDeviceChannelsAndVolume(t *testing.T) {
	requireDevice(t)

	spec, err := Opened()
	if err != nil {
		t.Fatalf("Opened: %v", err)
	}
	if spec.Frequency <= 0 || spec.Channels <= 0 {
		t.Fatalf("unexpected device spec %+v", spec)
	}

	if AllocateChannels(4) != 4 || ChannelCount() != 4 {
		t.Fatalf("channel allocation did not apply")
	}
	Channel(0).SetVolume(200)
	if v := Channel(0).Volume(); v != MaxVolume {
		t.Fatalf("channel volume = %d", v)
	}
	if Channel(1).Playing() || PlayingCount() != 0 {
		t.Fatalf("no channel should be playing")
	}

	SetMusicVolume(32)
	if MusicVolume() != 32 {
		t.Fatalf("music volume = %d", MusicVolume())
	}
	if MusicPlaying() || MusicFading() != NotFading {
		t.Fatalf("no music should be playing")
	}
}

func TestMusicHandleNil(t *testing.T) {
	if MusicHandle(nil).Valid() || SoundEffectHandle(nil).Valid() {
		t.Fatalf("nil handles are invalid")
	}
}

func TestSoundEffectWithoutChannel(t *testing.T) {
	e := SoundEffectHandle(nil)
	if _, ok := e.Channel(); ok || e.Playing() {
		t.Fatalf("an effect that never played has no channel")
	}
	e.Stop()
	e.FadeOut(0)
}

func TestNullSoundEffectPlay(t *testing.T) {
	for _, e := range []*SoundEffect{SoundEffectHandle(nil), nil} {
		if _, err := e.Play(AnyChannel, 0); !errors.Is(err, centurion.ErrMIX) {
			t.Fatalf("Play on a null effect = %v", err)
		}
		if _, err := e.FadeIn(AnyChannel, 0, 0); !errors.Is(err, centurion.ErrMIX) {
			t.Fatalf("FadeIn on a null effect = %v", err)
		}
		if e.Volume() != 0 || e.SetVolume(10) != 0 {
			t.Fatalf("a null effect has no volume")
		}
	}
	if _, ok := SoundEffectHandle(nil).Channel(); ok {
		t.Fatalf("a failed Play must not record a channel")
	}
}
