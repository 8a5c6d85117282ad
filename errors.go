package centurion

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Lib identifies which native library produced an error.
type Lib int

const (
	SDL Lib = iota
	IMG
	TTF
	MIX
)

var libraryNames = map[Lib]string{
	SDL: "SDL",
	IMG: "IMG",
	TTF: "TTF",
	MIX: "MIX",
}

func (l Lib) String() string {
	return EnumName(libraryNames, "Lib", l)
}

// Error is a failure reported by one of the native libraries.
//
// The message is the library's last-error string, captured at the failing call site.
type Error struct {
	Library Lib
	Message string
}

// Sentinel errors for matching with errors.Is by library.
var (
	ErrSDL = &Error{Library: SDL}
	ErrIMG = &Error{Library: IMG}
	ErrTTF = &Error{Library: TTF}
	ErrMIX = &Error{Library: MIX}
)

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Library.String() + ": unknown error"
	}
	return e.Library.String() + ": " + e.Message
}

// Is matches another *Error from the same library.  A target without a message matches any
// message, which is how the sentinel errors are used.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Library != t.Library {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// LastError captures the current native error string for the given library.
//
// SDL_image, SDL_mixer and SDL_ttf all report through SDL's error slot, so the library only tags
// where the failure came from.
func LastError(lib Lib) *Error {
	e := &Error{Library: lib}
	if err := sdl.GetError(); err != nil {
		e.Message = err.Error()
	}
	return e
}

// SDLError captures the last SDL error.
func SDLError() *Error { return LastError(SDL) }

// IMGError captures the last SDL_image error.
func IMGError() *Error { return LastError(IMG) }

// TTFError captures the last SDL_ttf error.
func TTFError() *Error { return LastError(TTF) }

// MIXError captures the last SDL_mixer error.
func MIXError() *Error { return LastError(MIX) }

// Wrap converts an error returned by go-sdl2 into an *Error tagged with lib.  A nil error yields nil.
func Wrap(lib Lib, err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Library: lib, Message: err.Error()}
}

// CheckCode converts SDL's "negative means failure" return convention into an error.
func CheckCode(lib Lib, code int) error {
	if code < 0 {
		return LastError(lib)
	}
	return nil
}

// SetError overwrites SDL's error slot.
func SetError(format string, args ...any) {
	sdl.SetError(fmt.Errorf(format, args...))
}

// ClearError empties SDL's error slot.
func ClearError() {
	sdl.ClearError()
}
