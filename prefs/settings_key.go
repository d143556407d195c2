package prefs

// SettingsKeyMode is the policy for showing the settings key.
type SettingsKeyMode int

const (
	// SettingsKeyModeAuto shows the key only when two or more input
	// methods are enabled on the system.
	SettingsKeyModeAuto SettingsKeyMode = iota
	SettingsKeyModeAlwaysShow
	SettingsKeyModeAlwaysHide
)

const (
	settingsKeyModeAutoValue       = "auto"
	settingsKeyModeAlwaysShowValue = "always_show"
	settingsKeyModeAlwaysHideValue = "always_hide"
)

// SettingsKeyMode returns the configured policy, defaulting to auto for an
// absent or unrecognized value.
func (s *Store) SettingsKeyMode() SettingsKeyMode {
	switch s.StringOr(KeySettingsKeyMode, settingsKeyModeAutoValue) {
	case settingsKeyModeAlwaysShowValue:
		return SettingsKeyModeAlwaysShow
	case settingsKeyModeAlwaysHideValue:
		return SettingsKeyModeAlwaysHide
	default:
		return SettingsKeyModeAuto
	}
}

func (m SettingsKeyMode) String() string {
	switch m {
	case SettingsKeyModeAlwaysShow:
		return settingsKeyModeAlwaysShowValue
	case SettingsKeyModeAlwaysHide:
		return settingsKeyModeAlwaysHideValue
	default:
		return settingsKeyModeAutoValue
	}
}
