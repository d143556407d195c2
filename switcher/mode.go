package switcher

import "github.com/softkbd/softkbd/keyboard"

// symbolsRevertState tracks whether typing in symbols mode should
// automatically revert to the alphabet keyboard: one or more real symbols
// followed by space or enter means the user is done with symbols.
type symbolsRevertState int

const (
	symbolsRevertNone symbolsRevertState = iota
	symbolsRevertBegin
	symbolsRevertInSymbol
)

// IsAlphabetMode reports whether the displayed keyboard is alphabetic.
func (s *Switcher) IsAlphabetMode() bool {
	return s.hasCurrent && s.current.IsAlphabet()
}

// ToggleKeyboardMode flips between the alphabet and symbol keyboards for the
// current editor context.
func (s *Switcher) ToggleKeyboardMode() {
	if err := s.loadKeyboardInternal(s.mode, s.imeOptions, s.voiceKeyEnabled,
		s.voiceButtonOnPrimary, !s.isSymbols); err != nil {
		s.logger.Warnf("Switcher:mode", "toggling keyboard mode failed: %v", err)
		return
	}
	if s.isSymbols {
		s.symbolsRevert = symbolsRevertBegin
	} else {
		s.symbolsRevert = symbolsRevertNone
	}
}

// ChangeKeyboardMode toggles the mode, re-applies caps lock if the keyboard
// stayed alphabetic with the lock engaged, and recomputes the shift display
// state.
func (s *Switcher) ChangeKeyboardMode() {
	s.ToggleKeyboardMode()
	if s.IsShiftLocked() && s.IsAlphabetMode() {
		s.setShiftLocked(true)
	}
	s.UpdateShiftState()
}

// toggleShiftInSymbol switches between the base and shifted symbol pages.
// No-op in alphabet mode.
func (s *Switcher) toggleShiftInSymbol() {
	if !s.hasCurrent || s.IsAlphabetMode() {
		return
	}
	if s.current == s.symbolsID || s.current != s.symbolsShiftedID {
		kbd, err := s.cache.Get(s.symbolsShiftedID)
		if err != nil {
			s.logger.Warnf("Switcher:mode", "loading shifted symbols page failed: %v", err)
			return
		}
		// The page modifier key shows a caps-lock style indicator while
		// the shifted page is up; latching the lock keeps it lit across
		// key releases.
		kbd.SetShiftLocked(true)
		s.current = s.symbolsShiftedID
		s.kbd = kbd
	} else {
		kbd, err := s.cache.Get(s.symbolsID)
		if err != nil {
			s.logger.Warnf("Switcher:mode", "loading symbols page failed: %v", err)
			return
		}
		kbd.SetShifted(false)
		s.current = s.symbolsID
		s.kbd = kbd
	}
	s.hasCurrent = true
	s.view.SetKeyboard(s.kbd)
}

// OnKey advances the auto-revert tracker with the code of each key typed
// while in symbols mode.
func (s *Switcher) OnKey(code int) {
	switch s.symbolsRevert {
	case symbolsRevertBegin:
		if code != keyboard.CodeSpace && code != keyboard.CodeEnter && code > 0 {
			s.symbolsRevert = symbolsRevertInSymbol
		}
	case symbolsRevertInSymbol:
		if code == keyboard.CodeSpace || code == keyboard.CodeEnter {
			s.ChangeKeyboardMode()
		}
	}
}
