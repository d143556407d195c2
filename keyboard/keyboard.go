package keyboard

import (
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
)

// ErrLayoutNotRegistered is returned by New when the identity names a layout
// kind with no registered template.
var ErrLayoutNotRegistered = errors.New("keyboard: layout not registered")

// Key is one materialized key of a constructed keyboard.
type Key struct {
	Code       int
	Label      string
	ShiftCode  int
	ShiftLabel string
}

// Keyboard is a constructed keyboard: the materialized keys for an Identity
// plus the transient display state. Construction is the expensive step the
// cache exists to avoid repeating.
type Keyboard struct {
	id   Identity
	keys [][]Key

	shift            ShiftState
	shiftLockEnabled bool

	autoCorrectionIndicator bool
}

// New materializes the layout named by id. Alphabet keys get their shifted
// form from the identity's locale casing rules, which is why construction
// runs under the identity's locale context.
func New(id Identity) (*Keyboard, error) {
	layout, ok := LayoutFor(id.Layout)
	if !ok {
		return nil, errors.Wrapf(ErrLayoutNotRegistered, "layout %q", id.Layout)
	}

	upper := cases.Upper(id.Locale)
	keys := make([][]Key, 0, len(layout.Rows))
	for _, row := range layout.Rows {
		keysRow := make([]Key, 0, len(row))
		for _, d := range row {
			k := Key{
				Code:       d.Code,
				Label:      d.Label,
				ShiftCode:  d.ShiftCode,
				ShiftLabel: d.ShiftLabel,
			}
			if id.IsAlphabet() && k.ShiftLabel == "" && k.Code > 0 {
				k.ShiftLabel = upper.String(d.Label)
				if r := []rune(k.ShiftLabel); len(r) == 1 {
					k.ShiftCode = int(r[0])
				}
			}
			keysRow = append(keysRow, k)
		}
		keys = append(keys, keysRow)
	}

	return &Keyboard{id: id, keys: keys}, nil
}

// ID returns the identity the keyboard was constructed for.
func (k *Keyboard) ID() Identity { return k.id }

// Keys returns the materialized key rows.
func (k *Keyboard) Keys() [][]Key { return k.keys }

// EnableShiftLock allows the shift key of this keyboard to latch. Applied
// once after construction for identities that are shift-lock capable.
func (k *Keyboard) EnableShiftLock() { k.shiftLockEnabled = true }

// IsShiftLockEnabled reports whether the shift key may latch.
func (k *Keyboard) IsShiftLockEnabled() bool { return k.shiftLockEnabled }

// SetShifted updates the shift display state. Reports whether the display
// changed and so needs a redraw.
func (k *Keyboard) SetShifted(shifted bool) bool {
	return k.shift.SetShifted(shifted)
}

// SetShiftLocked engages or releases caps lock. It is a no-op on keyboards
// whose shift key cannot latch.
func (k *Keyboard) SetShiftLocked(locked bool) bool {
	if !k.shiftLockEnabled {
		return false
	}
	return k.shift.SetShiftLocked(locked)
}

// SetAutomaticTemporaryUpperCase applies sentence-start capitalization.
func (k *Keyboard) SetAutomaticTemporaryUpperCase() {
	k.shift.SetAutomaticTemporaryUpperCase()
}

func (k *Keyboard) IsShiftedOrShiftLocked() bool { return k.shift.IsShiftedOrShiftLocked() }

func (k *Keyboard) IsShiftLocked() bool { return k.shift.IsShiftLocked() }

func (k *Keyboard) IsAutomaticTemporaryUpperCase() bool {
	return k.shift.IsAutomaticTemporaryUpperCase()
}

func (k *Keyboard) IsManualTemporaryUpperCase() bool {
	return k.shift.IsManualTemporaryUpperCase()
}

// ShiftStateString exposes the display state for diagnostics.
func (k *Keyboard) ShiftStateString() string { return k.shift.String() }

// SetAutoCorrectionIndicator updates the auto-correction display flag.
// Reports whether it changed and the indicator key needs a redraw.
func (k *Keyboard) SetAutoCorrectionIndicator(on bool) bool {
	if k.autoCorrectionIndicator == on {
		return false
	}
	k.autoCorrectionIndicator = on
	return true
}

// AutoCorrectionIndicator reports the auto-correction display flag.
func (k *Keyboard) AutoCorrectionIndicator() bool { return k.autoCorrectionIndicator }
