package keyboard

// modifierState is the press/release state of a single logical modifier key.
type modifierState int

const (
	stateReleasing modifierState = iota
	statePressing
	statePressingOnShifted
	stateChording
	stateIgnoring
)

func (s modifierState) String() string {
	switch s {
	case stateReleasing:
		return "releasing"
	case statePressing:
		return "pressing"
	case statePressingOnShifted:
		return "pressing_on_shifted"
	case stateChording:
		return "chording"
	case stateIgnoring:
		return "ignoring"
	}
	return "unknown"
}

// ModifierKeyState tracks one modifier key (shift or symbol) through press
// and release, distinguishing a plain tap from a chord where another key was
// struck while the modifier was held. Shift and symbol use independent
// instances; both must receive OnOtherKeyPressed for every non-modifier key.
type ModifierKeyState struct {
	name  string
	state modifierState
}

// NewModifierKeyState returns a released modifier tracker. The name only
// shows up in diagnostics.
func NewModifierKeyState(name string) *ModifierKeyState {
	return &ModifierKeyState{name: name}
}

// OnPress records a fresh press of the modifier key.
func (m *ModifierKeyState) OnPress() {
	m.state = statePressing
}

// OnPressOnShifted records a press made while the keyboard display was
// already shifted. Release handling treats this differently from a fresh
// press.
func (m *ModifierKeyState) OnPressOnShifted() {
	m.state = statePressingOnShifted
}

// OnRelease records the release of the modifier key.
func (m *ModifierKeyState) OnRelease() {
	m.state = stateReleasing
}

// OnOtherKeyPressed marks the held modifier as part of a chord. A press made
// on an already-shifted display becomes ignoring instead, so that release
// neither toggles shift nor drops caps lock.
func (m *ModifierKeyState) OnOtherKeyPressed() {
	switch m.state {
	case statePressing:
		m.state = stateChording
	case statePressingOnShifted:
		m.state = stateIgnoring
	}
}

func (m *ModifierKeyState) IsPressing() bool { return m.state == statePressing }

func (m *ModifierKeyState) IsPressingOnShifted() bool { return m.state == statePressingOnShifted }

func (m *ModifierKeyState) IsReleasing() bool { return m.state == stateReleasing }

func (m *ModifierKeyState) IsIgnoring() bool { return m.state == stateIgnoring }

// IsMomentary reports whether a chord occurred while the modifier was held
// after a fresh press.
func (m *ModifierKeyState) IsMomentary() bool { return m.state == stateChording }

func (m *ModifierKeyState) String() string {
	return m.name + ":" + m.state.String()
}
