package keyboard

import (
	"fmt"

	"golang.org/x/text/language"
)

// Identity describes everything that determines a keyboard's visual and
// functional layout. It is an immutable value: construct a fresh one on every
// mode or settings change and compare with ==. Identity is comparable so it
// can key the layout cache directly.
type Identity struct {
	Locale      language.Tag
	Orientation Orientation
	Mode        Mode
	Layout      LayoutKind
	ColorScheme ColorScheme

	HasSettingsKey  bool
	VoiceKeyEnabled bool
	HasVoiceKey     bool

	ImeOptions ImeOptions

	// ShiftLockEnabled marks keyboards whose shift key may latch: caps
	// lock on the alphabet layout, the lit page indicator on the shifted
	// symbols page.
	ShiftLockEnabled bool
}

// IsAlphabet reports whether the identity names an alphabetic layout, the
// only kind the shift/caps-lock protocol applies to.
func (id Identity) IsAlphabet() bool {
	return id.Layout == LayoutQwerty
}

func (id Identity) String() string {
	return fmt.Sprintf("[%s %s %s %s settings=%t voice=%t/%t ime=%d shiftlock=%t]",
		id.Locale, id.Orientation, id.Mode, id.Layout,
		id.HasSettingsKey, id.VoiceKeyEnabled, id.HasVoiceKey,
		id.ImeOptions, id.ShiftLockEnabled)
}
