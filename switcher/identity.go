package switcher

import (
	"github.com/softkbd/softkbd/keyboard"
	"github.com/softkbd/softkbd/prefs"
)

// hasVoiceKey places the voice key on exactly one of the two surfaces: the
// primary layout or the symbols layout, per preference.
func (s *Switcher) hasVoiceKey(isSymbols bool) bool {
	return s.voiceKeyEnabled && (isSymbols != s.voiceButtonOnPrimary)
}

// settingsKeyVisible applies the settings-key policy: always show, always
// hide, or automatically when the system has two or more enabled input
// methods.
func (s *Switcher) settingsKeyVisible() bool {
	mode := prefs.SettingsKeyModeAuto
	if s.store != nil {
		mode = s.store.SettingsKeyMode()
	}
	switch mode {
	case prefs.SettingsKeyModeAlwaysShow:
		return true
	case prefs.SettingsKeyModeAlwaysHide:
		return false
	default:
		return s.host.EnabledInputMethodCount() >= 2
	}
}

func (s *Switcher) colorScheme() keyboard.ColorScheme {
	if s.view != nil {
		return s.view.ColorScheme()
	}
	return keyboard.ColorSchemeWhite
}

// identityFor computes the identity of the main keyboard for the given
// editor context. Only the qwerty-class alphabet layout is shift-lock
// capable.
func (s *Switcher) identityFor(mode keyboard.Mode, imeOptions keyboard.ImeOptions, isSymbols bool) keyboard.Identity {
	var layout keyboard.LayoutKind
	var shiftLock bool
	if isSymbols {
		switch mode {
		case keyboard.ModePhone:
			layout = keyboard.LayoutPhoneSymbols
		case keyboard.ModeNumber:
			// The number layout has no alpha/symbol switch key, so it
			// serves both surfaces.
			layout = keyboard.LayoutNumber
		default:
			layout = keyboard.LayoutSymbols
		}
	} else {
		switch mode {
		case keyboard.ModePhone:
			layout = keyboard.LayoutPhone
		case keyboard.ModeNumber:
			layout = keyboard.LayoutNumber
		default:
			layout = keyboard.LayoutQwerty
			shiftLock = true
		}
	}

	return keyboard.Identity{
		Locale:           s.subtypes.InputLocale(),
		Orientation:      s.subtypes.Orientation(),
		Mode:             mode,
		Layout:           layout,
		ColorScheme:      s.colorScheme(),
		HasSettingsKey:   s.hasSettingsKey,
		VoiceKeyEnabled:  s.voiceKeyEnabled,
		HasVoiceKey:      s.hasVoiceKey(isSymbols),
		ImeOptions:       imeOptions,
		ShiftLockEnabled: shiftLock,
	}
}

// makeSymbolsIdentities precomputes the identities of the two symbol pages
// for the current context. They carry shift-lock capability so the page
// modifier key can hold its caps-lock style indicator.
func (s *Switcher) makeSymbolsIdentities() {
	base := keyboard.Identity{
		Locale:           s.subtypes.InputLocale(),
		Orientation:      s.subtypes.Orientation(),
		Mode:             s.mode,
		ColorScheme:      s.colorScheme(),
		HasSettingsKey:   s.hasSettingsKey,
		VoiceKeyEnabled:  s.voiceKeyEnabled,
		HasVoiceKey:      s.voiceKeyEnabled && !s.voiceButtonOnPrimary,
		ImeOptions:       s.imeOptions,
		ShiftLockEnabled: true,
	}

	s.symbolsID = base
	s.symbolsShiftedID = base
	if s.mode == keyboard.ModePhone {
		s.symbolsID.Layout = keyboard.LayoutPhone
		s.symbolsShiftedID.Layout = keyboard.LayoutPhoneSymbols
	} else {
		s.symbolsID.Layout = keyboard.LayoutSymbols
		s.symbolsShiftedID.Layout = keyboard.LayoutSymbolsShifted
	}
}
