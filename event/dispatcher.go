package event

import (
	"reflect"
	"sync"
)

// Dispatcher routes polled events to one callback per wrapper type.
type Dispatcher struct {
	mutex    sync.Mutex
	handler  Handler
	bindings map[reflect.Type]func(Event)
	fallback func(Event)
}

// NewDispatcher creates a dispatcher with no bindings.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{bindings: make(map[reflect.Type]func(Event))}
}

// Bind sets the callback for wrapper T, replacing any previous one.
func Bind[T Event](d *Dispatcher, fn func(T)) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.bindings[reflect.TypeFor[T]()] = func(e Event) {
		fn(e.(T))
	}
}

// Unbind removes the callback for wrapper T.
func Unbind[T Event](d *Dispatcher) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	delete(d.bindings, reflect.TypeFor[T]())
}

// Fallback sets the callback for events without a binding; nil drops them.
func (d *Dispatcher) Fallback(fn func(Event)) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.fallback = fn
}

// Bound returns the number of bound wrapper types.
func (d *Dispatcher) Bound() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return len(d.bindings)
}

// Reset removes every binding and the fallback.
func (d *Dispatcher) Reset() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	clear(d.bindings)
	d.fallback = nil
}

// Dispatch routes a single event.  It reports whether a callback received it.
func (d *Dispatcher) Dispatch(e Event) bool {
	if e == nil {
		return false
	}
	d.mutex.Lock()
	fn, ok := d.bindings[reflect.TypeOf(e)]
	if !ok {
		fn = d.fallback
	}
	d.mutex.Unlock()

	if fn == nil {
		return false
	}
	fn(e)
	return true
}

// Poll drains the queue, dispatching every event, and returns how many reached a callback.
func (d *Dispatcher) Poll() int {
	dispatched := 0
	for d.handler.Poll() {
		if d.Dispatch(d.handler.Event()) {
			dispatched++
		}
	}
	return dispatched
}
