package input

import "github.com/veandco/go-sdl2/sdl"

// ScanCode is a physical key position, independent of the keyboard layout.
type ScanCode uint32

const (
	ScanUnknown ScanCode = 0

	ScanA ScanCode = iota + 3
	ScanB
	ScanC
	ScanD
	ScanE
	ScanF
	ScanG
	ScanH
	ScanI
	ScanJ
	ScanK
	ScanL
	ScanM
	ScanN
	ScanO
	ScanP
	ScanQ
	ScanR
	ScanS
	ScanT
	ScanU
	ScanV
	ScanW
	ScanX
	ScanY
	ScanZ
	Scan1
	Scan2
	Scan3
	Scan4
	Scan5
	Scan6
	Scan7
	Scan8
	Scan9
	Scan0
	ScanReturn
	ScanEscape
	ScanBackspace
	ScanTab
	ScanSpace
)

const (
	ScanF1 ScanCode = iota + 58
	ScanF2
	ScanF3
	ScanF4
	ScanF5
	ScanF6
	ScanF7
	ScanF8
	ScanF9
	ScanF10
	ScanF11
	ScanF12
)

const (
	ScanRight ScanCode = iota + 79
	ScanLeft
	ScanDown
	ScanUp
)

const (
	ScanLCtrl ScanCode = iota + 224
	ScanLShift
	ScanLAlt
	ScanLGui
	ScanRCtrl
	ScanRShift
	ScanRAlt
	ScanRGui
)

// ScanCodeCount is the size of the keyboard state array.
const ScanCodeCount = 512

// ScanCodeFromName looks a scan code up by its SDL name, e.g. "Space".  Unknown names yield ScanUnknown.
func ScanCodeFromName(name string) ScanCode {
	return ScanCode(sdl.GetScancodeFromName(name))
}

// Name returns SDL's name for the scan code, or "" when it has none.
func (s ScanCode) Name() string {
	return sdl.GetScancodeName(sdl.Scancode(s))
}

func (s ScanCode) String() string { return s.Name() }

// Key returns the key code the scan code produces in the current layout.
func (s ScanCode) Key() KeyCode {
	return KeyCode(sdl.GetKeyFromScancode(sdl.Scancode(s)))
}

// KeyCode is a virtual key, the symbol a key produces in the current layout.
type KeyCode int32

const scanCodeMask = 1 << 30

// KeyCodeOf returns the key code SDL derives for keys without a character representation.
func KeyCodeOf(s ScanCode) KeyCode {
	return KeyCode(s) | scanCodeMask
}

const (
	KeyUnknown   KeyCode = 0
	KeyBackspace KeyCode = '\b'
	KeyTab       KeyCode = '\t'
	KeyReturn    KeyCode = '\r'
	KeyEscape    KeyCode = 0x1B
	KeySpace     KeyCode = ' '

	Key0 KeyCode = '0'
	Key1 KeyCode = '1'
	Key2 KeyCode = '2'
	Key3 KeyCode = '3'
	Key4 KeyCode = '4'
	Key5 KeyCode = '5'
	Key6 KeyCode = '6'
	Key7 KeyCode = '7'
	Key8 KeyCode = '8'
	Key9 KeyCode = '9'

	KeyA KeyCode = 'a'
	KeyB KeyCode = 'b'
	KeyC KeyCode = 'c'
	KeyD KeyCode = 'd'
	KeyE KeyCode = 'e'
	KeyF KeyCode = 'f'
	KeyG KeyCode = 'g'
	KeyH KeyCode = 'h'
	KeyI KeyCode = 'i'
	KeyJ KeyCode = 'j'
	KeyK KeyCode = 'k'
	KeyL KeyCode = 'l'
	KeyM KeyCode = 'm'
	KeyN KeyCode = 'n'
	KeyO KeyCode = 'o'
	KeyP KeyCode = 'p'
	KeyQ KeyCode = 'q'
	KeyR KeyCode = 'r'
	KeyS KeyCode = 's'
	KeyT KeyCode = 't'
	KeyU KeyCode = 'u'
	KeyV KeyCode = 'v'
	KeyW KeyCode = 'w'
	KeyX KeyCode = 'x'
	KeyY KeyCode = 'y'
	KeyZ KeyCode = 'z'

	KeyF1  = KeyCode(ScanF1) | scanCodeMask
	KeyF2  = KeyCode(ScanF2) | scanCodeMask
	KeyF3  = KeyCode(ScanF3) | scanCodeMask
	KeyF4  = KeyCode(ScanF4) | scanCodeMask
	KeyF5  = KeyCode(ScanF5) | scanCodeMask
	KeyF6  = KeyCode(ScanF6) | scanCodeMask
	KeyF7  = KeyCode(ScanF7) | scanCodeMask
	KeyF8  = KeyCode(ScanF8) | scanCodeMask
	KeyF9  = KeyCode(ScanF9) | scanCodeMask
	KeyF10 = KeyCode(ScanF10) | scanCodeMask
	KeyF11 = KeyCode(ScanF11) | scanCodeMask
	KeyF12 = KeyCode(ScanF12) | scanCodeMask

	KeyRight = KeyCode(ScanRight) | scanCodeMask
	KeyLeft  = KeyCode(ScanLeft) | scanCodeMask
	KeyDown  = KeyCode(ScanDown) | scanCodeMask
	KeyUp    = KeyCode(ScanUp) | scanCodeMask

	KeyLCtrl  = KeyCode(ScanLCtrl) | scanCodeMask
	KeyLShift = KeyCode(ScanLShift) | scanCodeMask
	KeyLAlt   = KeyCode(ScanLAlt) | scanCodeMask
	KeyLGui   = KeyCode(ScanLGui) | scanCodeMask
	KeyRCtrl  = KeyCode(ScanRCtrl) | scanCodeMask
	KeyRShift = KeyCode(ScanRShift) | scanCodeMask
	KeyRAlt   = KeyCode(ScanRAlt) | scanCodeMask
	KeyRGui   = KeyCode(ScanRGui) | scanCodeMask
)

// KeyCodeFromName looks a key code up by its SDL name, e.g. "Escape".  Unknown names yield KeyUnknown.
func KeyCodeFromName(name string) KeyCode {
	return KeyCode(sdl.GetKeyFromName(name))
}

// Name returns SDL's name for the key, or "" when it has none.
func (k KeyCode) Name() string {
	return sdl.GetKeyName(sdl.Keycode(k))
}

func (k KeyCode) String() string { return k.Name() }

// Scan returns the scan code that produces the key in the current layout.
func (k KeyCode) Scan() ScanCode {
	return ScanCode(sdl.GetScancodeFromKey(sdl.Keycode(k)))
}

// KeyMod mirrors SDL_Keymod.
type KeyMod uint16

const (
	ModNone   KeyMod = 0x0000
	ModLShift KeyMod = 0x0001
	ModRShift KeyMod = 0x0002
	ModLCtrl  KeyMod = 0x0040
	ModRCtrl  KeyMod = 0x0080
	ModLAlt   KeyMod = 0x0100
	ModRAlt   KeyMod = 0x0200
	ModLGui   KeyMod = 0x0400
	ModRGui   KeyMod = 0x0800
	ModNum    KeyMod = 0x1000
	ModCaps   KeyMod = 0x2000
	ModMode   KeyMod = 0x4000
	ModScroll KeyMod = 0x8000

	ModShift = ModLShift | ModRShift
	ModCtrl  = ModLCtrl | ModRCtrl
	ModAlt   = ModLAlt | ModRAlt
	ModGui   = ModLGui | ModRGui
)
