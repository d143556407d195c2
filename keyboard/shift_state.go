package keyboard

// shiftMode is the display shift state of a keyboard.
type shiftMode int

const (
	shiftNormal shiftMode = iota
	shiftManualShifted
	shiftAutomaticShifted
	shiftLocked
	shiftLockShifted
)

func (s shiftMode) String() string {
	switch s {
	case shiftNormal:
		return "normal"
	case shiftManualShifted:
		return "manual_shifted"
	case shiftAutomaticShifted:
		return "automatic_shifted"
	case shiftLocked:
		return "locked"
	case shiftLockShifted:
		return "lock_shifted"
	}
	return "unknown"
}

// ShiftState is the shift display machine of a single keyboard: normal,
// manually shifted, automatically shifted at a sentence start, caps locked,
// or shifted on top of caps lock. It only records what the keyboard shows;
// the press/release protocol lives in the switcher.
type ShiftState struct {
	mode shiftMode
}

// SetShifted moves between base and shifted display. While caps locked it
// only moves between the locked and lock-shifted variants, so un-shifting a
// cached keyboard does not drop the lock. Reports whether the display
// changed.
func (s *ShiftState) SetShifted(shifted bool) bool {
	prev := s.mode
	if s.mode == shiftLocked || s.mode == shiftLockShifted {
		if shifted {
			s.mode = shiftLockShifted
		} else {
			s.mode = shiftLocked
		}
	} else {
		if shifted {
			s.mode = shiftManualShifted
		} else {
			s.mode = shiftNormal
		}
	}
	return s.mode != prev
}

// SetShiftLocked engages or releases caps lock. Reports whether the display
// changed.
func (s *ShiftState) SetShiftLocked(locked bool) bool {
	prev := s.mode
	if locked {
		s.mode = shiftLocked
	} else {
		s.mode = shiftNormal
	}
	return s.mode != prev
}

// SetAutomaticTemporaryUpperCase applies sentence-start capitalization.
func (s *ShiftState) SetAutomaticTemporaryUpperCase() {
	s.mode = shiftAutomaticShifted
}

func (s *ShiftState) IsShiftedOrShiftLocked() bool { return s.mode != shiftNormal }

func (s *ShiftState) IsShiftLocked() bool {
	return s.mode == shiftLocked || s.mode == shiftLockShifted
}

func (s *ShiftState) IsAutomaticTemporaryUpperCase() bool {
	return s.mode == shiftAutomaticShifted
}

func (s *ShiftState) IsManualTemporaryUpperCase() bool {
	return s.mode == shiftManualShifted
}

func (s *ShiftState) String() string { return s.mode.String() }
