package hint

import "github.com/ignite-laboratories/centurion"

// Bimap is a fixed one-to-one mapping between enumerators and their native hint strings.
type Bimap[E comparable] struct {
	keys   map[E]string
	values map[string]E
}

// NewBimap builds the mapping from pairs.  It panics if two enumerators share a string.
func NewBimap[E comparable](pairs map[E]string) *Bimap[E] {
	b := &Bimap[E]{keys: make(map[E]string, len(pairs)), values: make(map[string]E, len(pairs))}
	for value, key := range pairs {
		if _, taken := b.values[key]; taken {
			panic("hint: duplicate key " + key)
		}
		b.keys[value] = key
		b.values[key] = value
	}
	return b
}

// Key returns the hint string for value, or "" if value is not mapped.
func (b *Bimap[E]) Key(value E) string {
	return b.keys[value]
}

// Value returns the enumerator for key.
func (b *Bimap[E]) Value(key string) (E, bool) {
	v, ok := b.values[key]
	return v, ok
}

func (b *Bimap[E]) Len() int {
	return len(b.keys)
}

func (b *Bimap[E]) mustKey(value E) string {
	return centurion.EnumName(b.keys, "hint value", value)
}
