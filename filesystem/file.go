package filesystem

// #cgo LDFLAGS: -lSDL2
// #include "SDL2/SDL.h"
import "C"

import (
	"io"
	"unsafe"

	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// File wraps an SDL_RWops stream.  It satisfies io.Reader, io.Writer and io.Seeker.
type File struct {
	res centurion.Resource[*sdl.RWops]
}

func closeFile(rw *sdl.RWops) { _ = rw.Close() }

// Open opens path with the given mode.
func Open(path string, mode FileMode) (*File, error) {
	res, err := centurion.Acquire(centurion.SDL, sdl.RWFromFile(path, mode.Mode()), nil, closeFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s as %v", path, mode)
	}
	core.Verbosef(ModuleName, "opened %s [%s]\n", path, mode.Mode())
	return &File{res: res}, nil
}

// FileHandle aliases a stream owned elsewhere.
func FileHandle(ptr *sdl.RWops) *File {
	return &File{res: centurion.Borrowed(ptr)}
}

func (f *File) Handle() *File        { return &File{res: f.res.Borrow()} }
func (f *File) Get() *sdl.RWops      { return f.res.Get() }
func (f *File) Valid() bool          { return f != nil && f.res.Valid() }
func (f *File) Close()               { f.res.Close() }
func (f *File) native() *C.SDL_RWops { return (*C.SDL_RWops)(unsafe.Pointer(f.res.Get())) }

var errClosed = &centurion.Error{Library: centurion.SDL, Message: "file is closed"}

// Read reads up to len(buf) bytes.  It returns io.EOF once no bytes remain and the SDL error
// when the read itself failed.
func (f *File) Read(buf []byte) (int, error) {
	if !f.Valid() {
		return 0, errClosed
	}
	if len(buf) == 0 {
		return 0, nil
	}
	C.SDL_ClearError()
	n := int(C.SDL_RWread(f.native(), unsafe.Pointer(&buf[0]), 1, C.size_t(len(buf))))
	if n == 0 {
		if C.GoString(C.SDL_GetError()) != "" {
			return 0, centurion.SDLError()
		}
		return 0, io.EOF
	}
	return n, nil
}

// Write writes buf, reporting an SDL error when fewer bytes were written.
func (f *File) Write(buf []byte) (int, error) {
	if !f.Valid() {
		return 0, errClosed
	}
	if len(buf) == 0 {
		return 0, nil
	}
	n := int(C.SDL_RWwrite(f.native(), unsafe.Pointer(&buf[0]), 1, C.size_t(len(buf))))
	if n < len(buf) {
		return n, centurion.SDLError()
	}
	return n, nil
}

// WriteString writes s.
func (f *File) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}

// Seek implements io.Seeker.  io.SeekStart, io.SeekCurrent and io.SeekEnd share their values
// with RW_SEEK_SET, RW_SEEK_CUR and RW_SEEK_END.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart, io.SeekCurrent, io.SeekEnd:
	default:
		return 0, errors.Errorf("seek: invalid whence %d", whence)
	}
	return f.SeekFrom(offset, SeekMode(whence))
}

// SeekFrom moves the stream position relative to mode and returns the new offset from the beginning.
func (f *File) SeekFrom(offset int64, mode SeekMode) (int64, error) {
	if !f.Valid() {
		return 0, errClosed
	}
	pos := int64(C.SDL_RWseek(f.native(), C.Sint64(offset), C.int(mode)))
	if pos < 0 {
		return 0, centurion.SDLError()
	}
	return pos, nil
}

// Offset returns the current stream position.
func (f *File) Offset() (int64, error) {
	if !f.Valid() {
		return 0, errClosed
	}
	pos := int64(C.SDL_RWtell(f.native()))
	if pos < 0 {
		return 0, centurion.SDLError()
	}
	return pos, nil
}

// Size returns the stream length in bytes.
func (f *File) Size() (int64, error) {
	if !f.Valid() {
		return 0, errClosed
	}
	size := int64(C.SDL_RWsize(f.native()))
	if size < 0 {
		return 0, centurion.SDLError()
	}
	return size, nil
}

// Type reports what kind of stream backs the file; TypeUnknown once closed.
func (f *File) Type() FileType {
	if !f.Valid() {
		return TypeUnknown
	}
	return FileType(f.native()._type)
}

// ReadAll reads everything from the current position to the end of the stream.
func (f *File) ReadAll() ([]byte, error) {
	return io.ReadAll(f)
}
