package video

import (
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// UnicodeString is a sequence of UTF-16 code units, the text representation used by SDL_ttf's
// UNICODE rendering functions.
type UnicodeString []uint16

var utf16Codec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// NewUnicodeString encodes s as UTF-16.  Invalid UTF-8 is replaced with U+FFFD.
func NewUnicodeString(s string) UnicodeString {
	raw, err := utf16Codec.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return UnicodeString(utf16.Encode([]rune(s)))
	}
	units := make(UnicodeString, len(raw)/2)
	for i := range units {
		units[i] = uint16(raw[2*i]) | uint16(raw[2*i+1])<<8
	}
	return units
}

// String decodes the code units back into UTF-8.  Malformed surrogates become U+FFFD.
func (u UnicodeString) String() string {
	raw := make([]byte, 2*len(u))
	for i, unit := range u {
		raw[2*i] = byte(unit)
		raw[2*i+1] = byte(unit >> 8)
	}
	decoded, err := utf16Codec.NewDecoder().Bytes(raw)
	if err != nil {
		return string(utf16.Decode(u))
	}
	return string(decoded)
}

// Latin1ToUTF8 decodes ISO-8859-1 text, the encoding used by SDL_ttf's plain text functions.
func Latin1ToUTF8(latin1 []byte) string {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(latin1)
	if err != nil {
		return string(latin1)
	}
	return string(decoded)
}
