// Package keyboard holds the layout model of a soft keyboard: the immutable
// identity that keys the layout cache, the registered layout definitions, and
// the small state machines for modifier keys and the shift display state.
package keyboard

// Mode describes the kind of text field the keyboard serves.
type Mode int

const (
	ModeText Mode = iota
	ModeURL
	ModeEmail
	ModeIM
	ModeWeb
	ModePhone
	ModeNumber
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeURL:
		return "url"
	case ModeEmail:
		return "email"
	case ModeIM:
		return "im"
	case ModeWeb:
		return "web"
	case ModePhone:
		return "phone"
	case ModeNumber:
		return "number"
	}
	return "unknown"
}

// Orientation is the host screen orientation.
type Orientation int

const (
	OrientationPortrait Orientation = iota
	OrientationLandscape
)

func (o Orientation) String() string {
	if o == OrientationLandscape {
		return "landscape"
	}
	return "portrait"
}

// ColorScheme selects the key art variant the view renders.
type ColorScheme int

const (
	ColorSchemeWhite ColorScheme = iota
	ColorSchemeBlack
)

// ImeOptions is an opaque bitmask forwarded from the host editor. It takes
// part in Identity equality but the switcher never interprets it.
type ImeOptions int

// LayoutKind names a registered layout.
type LayoutKind int

const (
	LayoutQwerty LayoutKind = iota
	LayoutSymbols
	LayoutSymbolsShifted
	LayoutPhone
	LayoutPhoneSymbols
	LayoutNumber
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutQwerty:
		return "qwerty"
	case LayoutSymbols:
		return "symbols"
	case LayoutSymbolsShifted:
		return "symbols_shifted"
	case LayoutPhone:
		return "phone"
	case LayoutPhoneSymbols:
		return "phone_symbols"
	case LayoutNumber:
		return "number"
	}
	return "unknown"
}

// Key codes delivered to the symbols auto-revert tracker. Printable keys use
// their rune value; function keys are negative and never count as typed
// symbols.
const (
	CodeSpace = int(' ')
	CodeEnter = int('\n')

	CodeShift      = -1
	CodeModeChange = -2
	CodeCancel     = -3
	CodeDone       = -4
	CodeDelete     = -5
	CodeSettings   = -6
	CodeVoice      = -7
	CodeCapsLock   = -8
)
