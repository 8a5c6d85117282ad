package centurion

import (
	"fmt"

	"go.uber.org/zap"
)

// Deleter releases a native resource.
type Deleter[P comparable] func(P)

// Resource pairs a native handle, usually a pointer to an opaque cgo type such as *sdl.Renderer, with
// the function that destroys it.
//
// A Resource built by Owned destroys its handle exactly once, when Close is called on a non-nil,
// non-released handle.  A Resource built by Borrowed has no deleter and never destroys anything;
// the caller guarantees the pointee outlives it.
type Resource[P comparable] struct {
	ptr     P
	deleter Deleter[P]
}

// Owned takes exclusive ownership of ptr.
func Owned[P comparable](ptr P, deleter Deleter[P]) Resource[P] {
	var null P
	if ptr != null {
		trace("resource acquired", ptr)
	}
	return Resource[P]{ptr: ptr, deleter: deleter}
}

// Borrowed aliases ptr without taking ownership.  A nil ptr yields an invalid handle, never an error.
func Borrowed[P comparable](ptr P) Resource[P] {
	return Resource[P]{ptr: ptr}
}

// Acquire is the error-checked construction path shared by all owners.
//
// It converts the result of a native factory into an owned Resource.  A non-nil err is wrapped with the
// given library tag; a nil handle with a nil err means the factory signalled failure without returning
// an error, so the library's last error is captured instead.
func Acquire[P comparable](lib Lib, ptr P, err error, deleter Deleter[P]) (Resource[P], error) {
	if err != nil {
		return Resource[P]{}, Wrap(lib, err)
	}
	var null P
	if ptr == null {
		return Resource[P]{}, LastError(lib)
	}
	return Owned(ptr, deleter), nil
}

// Get returns the native handle, which may be nil.
func (r *Resource[P]) Get() P {
	return r.ptr
}

// Valid reports whether the native handle is non-nil.
func (r *Resource[P]) Valid() bool {
	var null P
	return r.ptr != null
}

// Owning reports whether Close will destroy the native resource.
func (r *Resource[P]) Owning() bool {
	return r.deleter != nil
}

// Borrow returns a non-owning alias of the same handle.
func (r *Resource[P]) Borrow() Resource[P] {
	return Borrowed(r.ptr)
}

// Release gives up ownership without destroying the resource and leaves r null.
func (r *Resource[P]) Release() P {
	var null P
	ptr := r.ptr
	r.ptr = null
	return ptr
}

// Move transfers the handle and ownership into a new Resource, leaving r null.
func (r *Resource[P]) Move() Resource[P] {
	var null P
	moved := Resource[P]{ptr: r.ptr, deleter: r.deleter}
	r.ptr = null
	return moved
}

// Reset destroys the current resource, if owned, and then holds ptr.
func (r *Resource[P]) Reset(ptr P) {
	r.Close()
	r.ptr = ptr
}

// Close destroys an owned, non-null resource and nulls r.  Calling it again is a no-op.
func (r *Resource[P]) Close() {
	if !r.Valid() {
		return
	}
	if r.deleter != nil {
		trace("resource destroyed", r.ptr)
		r.deleter(r.ptr)
		var null P
		r.ptr = null
	}
}

func trace[P comparable](msg string, ptr P) {
	if ce := Logger().Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(zap.String("type", fmt.Sprintf("%T", ptr)), zap.String("address", fmt.Sprintf("%p", ptr)))
	}
}
