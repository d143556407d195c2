package api

// Host is the input-method service the switcher runs inside.
type Host interface {
	// AutoCapsEnabled reports whether the current text-cursor context is
	// eligible for automatic capitalization.
	AutoCapsEnabled() bool
	// EnabledInputMethodCount is the number of enabled input methods on
	// the system, consulted by the settings-key visibility policy.
	EnabledInputMethodCount() int
	// PopupOn reports the key-press popup preference.
	PopupOn() bool
	// ShowInputView asks the host to (re)display the input view.
	ShowInputView()
}
