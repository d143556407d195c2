// Package api declares the interfaces the host input method implements for
// the switcher: the rendered view, the IME service, the subtype provider,
// and the deferred-task scheduler. Holding these as explicit values (rather
// than reaching into the host) keeps every collaborator replaceable by a
// test double.
package api

import "github.com/softkbd/softkbd/keyboard"

// View is the host-rendered keyboard surface.
type View interface {
	// SetKeyboard makes the view display the given keyboard.
	SetKeyboard(kbd *keyboard.Keyboard)
	// InvalidateAllKeys requests a redraw of every key after a display
	// shift-state change.
	InvalidateAllKeys()
	// InvalidateKey requests a redraw of the key producing code, used when
	// a single indicator changes (for example the auto-correction mark on
	// the space key).
	InvalidateKey(code int)
	// IsShown reports whether the view is currently on screen.
	IsShown() bool
	// HasDistinctMultitouch reports whether the panel distinguishes
	// simultaneous touches; without it, un-shifting must also drop caps
	// lock since release alone cannot tell the two apart.
	HasDistinctMultitouch() bool
	// ColorScheme is the scheme the view is themed with.
	ColorScheme() keyboard.ColorScheme
	// SetPreviewEnabled toggles key-press popups.
	SetPreviewEnabled(on bool)
}
