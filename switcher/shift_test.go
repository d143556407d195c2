package switcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softkbd/softkbd/keyboard"
)

func loadedSwitcher(t *testing.T) (*Switcher, *fakeView, *fakeHost, *fakeScheduler) {
	t.Helper()
	s, view, host, sched := newTestSwitcher()
	s.LoadKeyboard(keyboard.ModeText, 0, false, false)
	require.True(t, s.IsKeyboardAvailable())
	return s, view, host, sched
}

func TestShiftTapLatchesAndSecondTapReleases(t *testing.T) {
	t.Parallel()

	s, _, _, _ := loadedSwitcher(t)

	s.OnPressShift()
	assert.True(t, s.IsManualTemporaryUpperCase())
	s.OnReleaseShift()
	assert.True(t, s.IsManualTemporaryUpperCase(), "plain tap latches shift")

	s.OnPressShift()
	s.OnReleaseShift()
	assert.False(t, s.IsShiftedOrShiftLocked(), "second tap releases shift")
}

func TestShiftChordIsOneShot(t *testing.T) {
	t.Parallel()

	s, _, _, _ := loadedSwitcher(t)

	s.OnPressShift()
	assert.True(t, s.IsShiftedOrShiftLocked())
	s.OnOtherKeyPressed()
	s.OnReleaseShift()
	assert.False(t, s.IsShiftedOrShiftLocked(), "chorded shift turns off on release")
}

func TestCapsLockToggle(t *testing.T) {
	t.Parallel()

	s, _, _, _ := loadedSwitcher(t)

	s.ToggleCapsLock()
	assert.True(t, s.IsShiftLocked())

	s.ToggleCapsLock()
	assert.False(t, s.IsShiftLocked())
	assert.True(t, s.shiftKeyState.IsReleasing())
}

func TestShiftTapWhileLockedUnlocks(t *testing.T) {
	t.Parallel()

	s, _, _, _ := loadedSwitcher(t)
	s.ToggleCapsLock()
	require.True(t, s.IsShiftLocked())

	s.OnPressShift()
	s.OnReleaseShift()
	assert.False(t, s.IsShiftLocked())
	assert.True(t, s.shiftKeyState.IsReleasing())
}

func TestShiftChordWhileLockedKeepsLock(t *testing.T) {
	t.Parallel()

	s, _, _, _ := loadedSwitcher(t)
	s.ToggleCapsLock()
	require.True(t, s.IsShiftLocked())

	s.OnPressShift()
	s.OnOtherKeyPressed()
	s.OnReleaseShift()
	assert.True(t, s.IsShiftLocked(), "chording through caps lock keeps the lock")
}

func TestAutoCapsAppliesOnlyWhileReleased(t *testing.T) {
	t.Parallel()

	s, _, host, _ := loadedSwitcher(t)
	host.autoCaps = true

	s.UpdateShiftState()
	assert.True(t, s.IsAutomaticTemporaryUpperCase())

	// Pressing shift promotes the automatic state to a manual one.
	s.OnPressShift()
	assert.True(t, s.IsManualTemporaryUpperCase())
	assert.False(t, s.IsAutomaticTemporaryUpperCase())
}

func TestUpdateShiftStateSkipsWhileLocked(t *testing.T) {
	t.Parallel()

	s, _, host, _ := loadedSwitcher(t)
	host.autoCaps = true
	s.ToggleCapsLock()

	s.UpdateShiftState()
	assert.True(t, s.IsShiftLocked())
	assert.False(t, s.IsAutomaticTemporaryUpperCase())
}

func TestUpdateShiftStateClearsTrackerInSymbols(t *testing.T) {
	t.Parallel()

	s, _, _, _ := loadedSwitcher(t)
	s.ToggleKeyboardMode()
	require.False(t, s.IsAlphabetMode())

	s.shiftKeyState.OnPress()
	s.UpdateShiftState()
	assert.True(t, s.shiftKeyState.IsReleasing())
}

func TestSymbolPageToggle(t *testing.T) {
	t.Parallel()

	s, _, _, _ := loadedSwitcher(t)
	s.ToggleKeyboardMode()
	require.False(t, s.IsAlphabetMode())

	s.OnPressShift()
	id, _ := s.CurrentIdentity()
	assert.Equal(t, keyboard.LayoutSymbolsShifted, id.Layout)
	assert.True(t, s.CurrentKeyboard().IsShiftLocked(), "page key indicator latched")
	s.OnReleaseShift()

	s.OnPressShift()
	id, _ = s.CurrentIdentity()
	assert.Equal(t, keyboard.LayoutSymbols, id.Layout)
	s.OnReleaseShift()
}

func TestSymbolKeyTapStaysInSymbols(t *testing.T) {
	t.Parallel()

	s, _, _, _ := loadedSwitcher(t)

	s.OnPressSymbol()
	require.False(t, s.IsAlphabetMode())
	s.OnReleaseSymbol()
	assert.False(t, s.IsAlphabetMode(), "plain tap stays in symbols")
}

func TestSymbolKeyChordIsOneShot(t *testing.T) {
	t.Parallel()

	s, _, _, _ := loadedSwitcher(t)

	s.OnPressSymbol()
	require.False(t, s.IsAlphabetMode())
	s.OnOtherKeyPressed()
	s.OnReleaseSymbol()
	assert.True(t, s.IsAlphabetMode(), "chorded symbol key reverts on release")
}

func TestAutoRevertAfterSymbolThenSpace(t *testing.T) {
	t.Parallel()

	s, _, _, _ := loadedSwitcher(t)
	s.ToggleKeyboardMode()
	require.False(t, s.IsAlphabetMode())

	s.OnKey(int('1'))
	assert.False(t, s.IsAlphabetMode())
	s.OnKey(keyboard.CodeSpace)
	assert.True(t, s.IsAlphabetMode(), "symbol followed by space reverts to alphabet")
}

func TestAutoRevertNeedsSymbolFirst(t *testing.T) {
	t.Parallel()

	s, _, _, _ := loadedSwitcher(t)
	s.ToggleKeyboardMode()

	s.OnKey(keyboard.CodeSpace)
	assert.False(t, s.IsAlphabetMode(), "space without a symbol does not revert")

	s.OnKey(keyboard.CodeEnter)
	assert.False(t, s.IsAlphabetMode())
}

func TestAutoRevertIgnoresFunctionKeys(t *testing.T) {
	t.Parallel()

	s, _, _, _ := loadedSwitcher(t)
	s.ToggleKeyboardMode()

	// Non-positive codes never count as typed symbols.
	s.OnKey(keyboard.CodeDelete)
	s.OnKey(keyboard.CodeSpace)
	assert.False(t, s.IsAlphabetMode())
}

func TestCapsLockReappliedAfterModeRoundTrip(t *testing.T) {
	t.Parallel()

	s, _, _, _ := loadedSwitcher(t)
	s.ToggleCapsLock()
	require.True(t, s.IsShiftLocked())

	s.ChangeKeyboardMode()
	require.False(t, s.IsAlphabetMode())
	s.ChangeKeyboardMode()
	require.True(t, s.IsAlphabetMode())
	assert.True(t, s.IsShiftLocked(), "caps lock survives a symbols round trip")
}

func TestDeferredShiftUpdateCancelledByToggle(t *testing.T) {
	t.Parallel()

	s, _, host, sched := loadedSwitcher(t)
	host.autoCaps = true

	s.PostUpdateShiftState()
	require.Equal(t, 1, sched.pending())

	// The manual toggle must win over the stale deferred update.
	s.ToggleShift()
	sched.runPending()
	assert.True(t, s.IsManualTemporaryUpperCase())
	assert.False(t, s.IsAutomaticTemporaryUpperCase())
}

func TestDeferredShiftUpdateRuns(t *testing.T) {
	t.Parallel()

	s, _, host, sched := loadedSwitcher(t)
	host.autoCaps = true

	s.PostUpdateShiftState()
	sched.runPending()
	assert.True(t, s.IsAutomaticTemporaryUpperCase())
}

func TestNonDistinctMultitouchUnshiftDropsLock(t *testing.T) {
	t.Parallel()

	s, view, _, _ := newTestSwitcher()
	view.distinctMultitouch = false
	s.LoadKeyboard(keyboard.ModeText, 0, false, false)
	s.ToggleCapsLock()
	require.True(t, s.IsShiftLocked())

	s.ToggleShift()
	assert.False(t, s.IsShiftLocked(), "without distinct multitouch un-shift clears the lock")
}

func TestShiftIgnoredWithoutKeyboard(t *testing.T) {
	t.Parallel()

	s, _, _, _ := newTestSwitcher()
	assert.NotPanics(t, func() {
		s.OnPressShift()
		s.OnReleaseShift()
		s.ToggleShift()
		s.ToggleCapsLock()
		s.UpdateShiftState()
	})
}

func TestAutoCorrectionIndicatorInvalidatesSpaceKey(t *testing.T) {
	t.Parallel()

	s, view, _, _ := loadedSwitcher(t)

	s.OnAutoCorrectionStateChanged(true)
	assert.Equal(t, []int{keyboard.CodeSpace}, view.invalidatedKeys)
	assert.True(t, s.CurrentKeyboard().AutoCorrectionIndicator())

	// No change, no redraw.
	s.OnAutoCorrectionStateChanged(true)
	assert.Len(t, view.invalidatedKeys, 1)
}
