package switcher

// The shift protocol below only applies in alphabet mode; in symbol modes
// the shift key flips the symbol page and the tracker is simply cleared on
// the way out. The release-side case order (chord first, then caps lock,
// then pressed-on-shifted) is load-bearing and must not be rearranged.

// IsShiftedOrShiftLocked reports whether the displayed keyboard shows any
// shifted state.
func (s *Switcher) IsShiftedOrShiftLocked() bool {
	return s.kbd != nil && s.kbd.IsShiftedOrShiftLocked()
}

// IsShiftLocked reports whether caps lock is engaged.
func (s *Switcher) IsShiftLocked() bool {
	return s.kbd != nil && s.kbd.IsShiftLocked()
}

// IsAutomaticTemporaryUpperCase reports sentence-start capitalization.
func (s *Switcher) IsAutomaticTemporaryUpperCase() bool {
	return s.kbd != nil && s.kbd.IsAutomaticTemporaryUpperCase()
}

// IsManualTemporaryUpperCase reports a user-toggled shift.
func (s *Switcher) IsManualTemporaryUpperCase() bool {
	return s.kbd != nil && s.kbd.IsManualTemporaryUpperCase()
}

func (s *Switcher) setManualTemporaryUpperCase(shifted bool) {
	if s.kbd == nil {
		return
	}
	// On a panel without distinct multitouch, un-shifting must also drop
	// caps lock: release events alone cannot tell the two apart there. On
	// distinct-multitouch panels OnReleaseShift handles the lock.
	if !s.view.HasDistinctMultitouch() && !shifted && s.kbd.IsShiftLocked() {
		s.kbd.SetShiftLocked(false)
	}
	if s.kbd.SetShifted(shifted) {
		s.view.InvalidateAllKeys()
	}
}

func (s *Switcher) setShiftLocked(locked bool) {
	if s.kbd != nil && s.kbd.SetShiftLocked(locked) {
		s.view.InvalidateAllKeys()
	}
}

func (s *Switcher) setAutomaticTemporaryUpperCase() {
	if s.kbd == nil {
		return
	}
	s.kbd.SetAutomaticTemporaryUpperCase()
	s.view.InvalidateAllKeys()
}

// ToggleShift flips the shift state in alphabet mode, or the symbol page
// otherwise. A pending deferred shift update is cancelled first so it cannot
// override the user's action.
func (s *Switcher) ToggleShift() {
	s.CancelUpdateShiftState()
	if s.logger.DebugMode() && s.kbd != nil {
		s.logger.Debugf("Switcher:shift", "toggleShift: keyboard=%s shiftKeyState=%s",
			s.kbd.ShiftStateString(), s.shiftKeyState)
	}
	if s.IsAlphabetMode() {
		s.setManualTemporaryUpperCase(!s.IsShiftedOrShiftLocked())
	} else {
		s.toggleShiftInSymbol()
	}
}

// ToggleCapsLock engages or releases caps lock in alphabet mode. Releasing
// also marks the shift key released so no further chord logic applies to the
// press that triggered it.
func (s *Switcher) ToggleCapsLock() {
	s.CancelUpdateShiftState()
	if !s.IsAlphabetMode() {
		return
	}
	if s.IsShiftLocked() {
		s.setShiftLocked(false)
		s.shiftKeyState.OnRelease()
	} else {
		s.setShiftLocked(true)
	}
}

// UpdateShiftState recomputes the shift display after the host reports a
// text-context change, such as the cursor landing at a sentence start.
func (s *Switcher) UpdateShiftState() {
	if s.IsAlphabetMode() {
		if !s.IsShiftLocked() && !s.shiftKeyState.IsIgnoring() {
			if s.shiftKeyState.IsReleasing() && s.host.AutoCapsEnabled() {
				// Automatic capitalization applies only while the shift
				// key is not held.
				s.setAutomaticTemporaryUpperCase()
			} else {
				s.setManualTemporaryUpperCase(s.shiftKeyState.IsMomentary())
			}
		}
	} else {
		// Only the alphabet keyboard has a shift key to track.
		s.shiftKeyState.OnRelease()
	}
}

// OnPressShift handles the press half of a shift-key touch.
func (s *Switcher) OnPressShift() {
	if !s.IsKeyboardAvailable() {
		return
	}
	if s.IsAlphabetMode() {
		switch {
		case s.IsShiftLocked():
			// Pressed while caps locked: show shifted caps lock and
			// treat the press as if made in normal state.
			s.shiftKeyState.OnPress()
			s.setManualTemporaryUpperCase(true)
		case s.IsAutomaticTemporaryUpperCase():
			// Pressing shift promotes automatic capitalization to a
			// manual shift.
			s.shiftKeyState.OnPress()
			s.setManualTemporaryUpperCase(true)
		case s.IsShiftedOrShiftLocked():
			// Already manually shifted: just record the press; release
			// decides what happens.
			s.shiftKeyState.OnPressOnShifted()
		default:
			s.shiftKeyState.OnPress()
			s.ToggleShift()
		}
	} else {
		s.shiftKeyState.OnPress()
		s.ToggleShift()
	}
}

// OnReleaseShift handles the release half of a shift-key touch.
func (s *Switcher) OnReleaseShift() {
	if !s.IsKeyboardAvailable() {
		return
	}
	if s.IsAlphabetMode() {
		switch {
		case s.shiftKeyState.IsMomentary():
			// The press was chorded: shift was a one-shot.
			s.ToggleShift()
		case s.IsShiftLocked() && !s.shiftKeyState.IsIgnoring():
			// A plain tap while caps locked unlocks.
			s.ToggleCapsLock()
		case s.IsShiftedOrShiftLocked() && s.shiftKeyState.IsPressingOnShifted():
			// A plain tap while already shifted un-shifts.
			s.ToggleShift()
		}
	}
	s.shiftKeyState.OnRelease()
}

// OnPressSymbol handles the press half of the symbol-mode key.
func (s *Switcher) OnPressSymbol() {
	s.ChangeKeyboardMode()
	s.symbolKeyState.OnPress()
}

// OnReleaseSymbol handles the release half of the symbol-mode key. A chorded
// press toggles the mode back, making the key a one-shot.
func (s *Switcher) OnReleaseSymbol() {
	if s.symbolKeyState.IsMomentary() {
		s.ChangeKeyboardMode()
	}
	s.symbolKeyState.OnRelease()
}

// OnOtherKeyPressed must be called for every non-modifier key press so both
// modifier trackers can tell chords from taps.
func (s *Switcher) OnOtherKeyPressed() {
	s.shiftKeyState.OnOtherKeyPressed()
	s.symbolKeyState.OnOtherKeyPressed()
}

// PostUpdateShiftState schedules UpdateShiftState on the host event thread,
// replacing any pending one. Without a scheduler it runs immediately.
func (s *Switcher) PostUpdateShiftState() {
	s.CancelUpdateShiftState()
	if s.sched == nil {
		s.UpdateShiftState()
		return
	}
	s.pendingShiftUpdate = s.sched.Post(func() {
		s.pendingShiftUpdate = nil
		s.UpdateShiftState()
	})
}

// CancelUpdateShiftState drops a pending deferred shift update, if any.
func (s *Switcher) CancelUpdateShiftState() {
	if s.pendingShiftUpdate != nil {
		s.pendingShiftUpdate.Cancel()
		s.pendingShiftUpdate = nil
	}
}
