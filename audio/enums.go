package audio

import "github.com/ignite-laboratories/centurion"

// Format mirrors SDL's AUDIO_* sample formats.
type Format uint16

const (
	FormatU8     Format = 0x0008
	FormatS8     Format = 0x8008
	FormatU16LSB Format = 0x0010
	FormatS16LSB Format = 0x8010
	FormatU16MSB Format = 0x1010
	FormatS16MSB Format = 0x9010
	FormatS32LSB Format = 0x8020
	FormatS32MSB Format = 0x9020
	FormatF32LSB Format = 0x8120
	FormatF32MSB Format = 0x9120
)

var formatNames = map[Format]string{
	FormatU8:     "U8",
	FormatS8:     "S8",
	FormatU16LSB: "U16LSB",
	FormatS16LSB: "S16LSB",
	FormatU16MSB: "U16MSB",
	FormatS16MSB: "S16MSB",
	FormatS32LSB: "S32LSB",
	FormatS32MSB: "S32MSB",
	FormatF32LSB: "F32LSB",
	FormatF32MSB: "F32MSB",
}

func (f Format) String() string {
	return centurion.EnumName(formatNames, "Format", f)
}

// BitSize returns the number of bits per sample.
func (f Format) BitSize() int {
	return int(f & 0xFF)
}

// MusicType mirrors Mix_MusicType.
type MusicType int

const (
	MusicNone MusicType = iota
	MusicCMD
	MusicWAV
	MusicMOD
	MusicMID
	MusicOGG
	MusicMP3
	MusicMP3Mad
	MusicFLAC
	MusicModPlug
	MusicOpus
)

var musicTypeNames = map[MusicType]string{
	MusicNone:    "None",
	MusicCMD:     "CMD",
	MusicWAV:     "WAV",
	MusicMOD:     "MOD",
	MusicMID:     "MID",
	MusicOGG:     "OGG",
	MusicMP3:     "MP3",
	MusicMP3Mad:  "MP3Mad",
	MusicFLAC:    "FLAC",
	MusicModPlug: "ModPlug",
	MusicOpus:    "Opus",
}

func (t MusicType) String() string {
	return centurion.EnumName(musicTypeNames, "MusicType", t)
}

// FadeStatus mirrors Mix_Fading.
type FadeStatus int

const (
	NotFading FadeStatus = iota
	FadingOut
	FadingIn
)

var fadeStatusNames = map[FadeStatus]string{
	NotFading: "NotFading",
	FadingOut: "FadingOut",
	FadingIn:  "FadingIn",
}

func (s FadeStatus) String() string {
	return centurion.EnumName(fadeStatusNames, "FadeStatus", s)
}
