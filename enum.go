package centurion

import "fmt"

// EnumError is raised when a value outside a mirrored enumeration is converted to a string.
type EnumError struct {
	Enum  string
	Value any
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("centurion: %v is not a declared %s", e.Value, e.Enum)
}

// EnumName looks up the name of a mirrored enumerator.  It panics with an *EnumError for any value
// that has no declared name, including native values introduced by newer library versions.
func EnumName[E comparable](names map[E]string, enum string, value E) string {
	if name, ok := names[value]; ok {
		return name
	}
	panic(&EnumError{Enum: enum, Value: value})
}
