package api

import (
	"golang.org/x/text/language"

	"github.com/softkbd/softkbd/keyboard"
)

// Subtypes provides the active input locale and screen orientation, and the
// scoped process-locale switch keyboard construction runs under.
type Subtypes interface {
	// InputLocale is the locale of the active input subtype.
	InputLocale() language.Tag
	// Orientation is the current screen orientation.
	Orientation() keyboard.Orientation
	// SwapSystemLocale switches the process-wide locale context to loc and
	// returns a restore function. Callers must invoke restore even when
	// the work in between fails.
	SwapSystemLocale(loc language.Tag) (restore func())
}
