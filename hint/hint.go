package hint

import (
	"strconv"

	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/core"
	"github.com/veandco/go-sdl2/sdl"
)

// Priority mirrors SDL_HintPriority.
type Priority int

const (
	PriorityDefault Priority = iota
	PriorityNormal
	PriorityOverride
)

var priorityNames = map[Priority]string{
	PriorityDefault:  "Default",
	PriorityNormal:   "Normal",
	PriorityOverride: "Override",
}

func (p Priority) String() string {
	return centurion.EnumName(priorityNames, "Priority", p)
}

// Hint describes one native hint: its name and how its values travel to and from strings.
type Hint[T any] struct {
	Name   string
	parse  func(string) (T, bool)
	format func(T) string
}

// New builds a descriptor from explicit conversions.  parse reports false for strings it rejects.
func New[T any](name string, parse func(string) (T, bool), format func(T) string) Hint[T] {
	return Hint[T]{Name: name, parse: parse, format: format}
}

// Bool describes a hint SDL reads with SDL_GetHintBoolean.
func Bool(name string) Hint[bool] {
	return New(name, parseBool, formatBool)
}

// Int describes a hint holding a decimal integer.
func Int(name string) Hint[int] {
	return New(name, func(s string) (int, bool) {
		v, err := strconv.Atoi(s)
		return v, err == nil
	}, strconv.Itoa)
}

// String describes a free-form hint.
func String(name string) Hint[string] {
	return New(name, func(s string) (string, bool) { return s, true }, func(s string) string { return s })
}

// Enum describes a hint whose accepted strings map one-to-one onto values of E.  Setting an
// unmapped value panics with a *centurion.EnumError.
func Enum[E comparable](name string, values *Bimap[E]) Hint[E] {
	return New(name, values.Value, values.mustKey)
}

// Set assigns a value at normal priority.
func Set[T any](h Hint[T], value T) centurion.Result {
	return SetWithPriority(h, value, PriorityNormal)
}

// SetWithPriority assigns a value; SDL ignores it when a higher priority value is already set.
func SetWithPriority[T any](h Hint[T], value T, priority Priority) centurion.Result {
	str := h.format(value)
	ok := sdl.SetHintWithPriority(h.Name, str, sdl.HintPriority(priority))
	if ok {
		core.Verbosef(ModuleName, "%s = %s [%v]\n", h.Name, str, priority)
	}
	return centurion.ResultOf(ok)
}

// Get returns the current value.  It reports false when the hint is unset or holds a string the
// descriptor cannot parse.
func Get[T any](h Hint[T]) (T, bool) {
	str := sdl.GetHint(h.Name)
	if str == "" {
		var zero T
		return zero, false
	}
	return h.parse(str)
}

// GetOr returns the current value, or fallback when Get would report false.
func GetOr[T any](h Hint[T], fallback T) T {
	if v, ok := Get(h); ok {
		return v
	}
	return fallback
}

// Clear resets every hint to its default and drops all set values.
func Clear() {
	sdl.ClearHints()
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "0", "false", "FALSE", "False":
		return false, true
	}
	return true, true
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
